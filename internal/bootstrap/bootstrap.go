package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/campushub/backend/internal/app/auth"
	appControllers "github.com/campushub/backend/internal/app/controllers"
	appMigrations "github.com/campushub/backend/internal/app/migrations"
	appRepos "github.com/campushub/backend/internal/app/repositories"
	appRoutes "github.com/campushub/backend/internal/app/routes"
	appServices "github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/db"
	appMiddleware "github.com/campushub/backend/internal/middleware"
	pkgAuth "github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/logger"
	"github.com/campushub/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos        *appRepos.Repositories
	JWTService   *pkgAuth.JWTService
	AuthzService *appAuth.AuthorizationService

	AuthService       *appServices.AuthService
	UserService       *appServices.UserService
	DepartmentService *appServices.DepartmentService
	CourseService     *appServices.CourseService
	EnrollmentService *appServices.EnrollmentService
	AssignmentService *appServices.AssignmentService
	GradeService      *appServices.GradeService
	AttendanceService *appServices.AttendanceService
	ResourceService   *appServices.ResourceService
	BookingService    *appServices.BookingService

	HealthController     *appControllers.HealthController
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	DepartmentController *appControllers.DepartmentController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	AssignmentController *appControllers.AssignmentController
	GradeController      *appControllers.GradeController
	AttendanceController *appControllers.AttendanceController
	ResourceController   *appControllers.ResourceController
	BookingController    *appControllers.BookingController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDir(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.UserRepository, deps.AuthzService)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository, deps.AuthzService)
	deps.AssignmentService = appServices.NewAssignmentService(deps.Repos.AssignmentRepository, deps.Repos.CourseRepository, deps.AuthzService)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository, deps.Repos.AssignmentRepository, deps.AuthzService)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.AuthzService)
	deps.ResourceService = appServices.NewResourceService(deps.Repos.ResourceRepository, deps.AuthzService)
	deps.BookingService = appServices.NewBookingService(deps.Repos.BookingRepository, deps.Repos.ResourceRepository, deps.AuthzService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.HealthController = appControllers.NewHealthController(dbPool)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.BookingController = appControllers.NewBookingController(deps.BookingService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.AuthController,
		deps.UserController,
		deps.DepartmentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.AssignmentController,
		deps.GradeController,
		deps.AttendanceController,
		deps.ResourceController,
		deps.BookingController,
		deps.AuthMiddleware,
	)

	return router
}
