package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/middleware"
)

// SetupRouter configures all application routes. Route-level role
// middleware only gates surfaces that are uniform for a whole group;
// mixed-permission operations (course update, assignment and grade
// writes, booking deletion) are narrowed inside the services.
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	assignmentController *controllers.AssignmentController,
	gradeController *controllers.GradeController,
	attendanceController *controllers.AttendanceController,
	resourceController *controllers.ResourceController,
	bookingController *controllers.BookingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", healthController.Health)
	v1.GET("/health/db", healthController.HealthDB)

	auth := v1.Group("/auth")
	{
		auth.POST("/register-admin", authController.RegisterAdmin)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/users/me", userController.GetMe)

	users := authenticated.Group("/users")
	users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	departments := authenticated.Group("/departments")
	departments.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		departments.POST("", departmentController.CreateDepartment)
		departments.GET("", departmentController.ListDepartments)
		departments.GET("/:id", departmentController.GetDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)

		// Update is open to any authenticated role here; ownership
		// narrowing happens in the course service.
		courses.PUT("/:id", courseController.UpdateCourse)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}

		courses.POST("/:id/assignments", assignmentController.CreateAssignment)
		courses.GET("/:id/assignments", assignmentController.ListAssignments)

		courses.POST("/:id/attendance", attendanceController.MarkAttendance)
		courses.GET("/:id/attendance", attendanceController.ListAttendance)
	}

	enrollments := authenticated.Group("/enrollments")
	enrollments.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("", enrollmentController.ListEnrollments)
	}

	teacher := authenticated.Group("/teacher")
	teacher.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleHOD))
	{
		teacher.GET("/courses", courseController.ListOwnCourses)
		teacher.GET("/courses/:id/students", courseController.ListEnrolledStudents)
	}

	assignments := authenticated.Group("/assignments")
	{
		assignments.GET("/:id", assignmentController.GetAssignment)
		assignments.PUT("/:id", assignmentController.UpdateAssignment)
		assignments.DELETE("/:id", assignmentController.DeleteAssignment)

		assignments.POST("/:id/grades", gradeController.CreateGrade)
		assignments.GET("/:id/grades", gradeController.ListGrades)
	}

	authenticated.PUT("/grades/:id", gradeController.UpdateGrade)

	resources := authenticated.Group("/resources")
	{
		resources.GET("", resourceController.ListResources)
		resources.GET("/:id", resourceController.GetResource)

		resourcesAdmin := resources.Group("")
		resourcesAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			resourcesAdmin.POST("", resourceController.CreateResource)
			resourcesAdmin.PUT("/:id", resourceController.UpdateResource)
			resourcesAdmin.DELETE("/:id", resourceController.DeleteResource)
		}
	}

	bookings := authenticated.Group("/bookings")
	{
		bookings.POST("", bookingController.CreateBooking)
		bookings.GET("", bookingController.ListBookings)
		bookings.DELETE("/:id", bookingController.DeleteBooking)

		bookingsAdmin := bookings.Group("")
		bookingsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			bookingsAdmin.PUT("/:id/status", bookingController.ResolveBooking)
		}
	}
}
