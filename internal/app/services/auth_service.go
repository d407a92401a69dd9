package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	pkgauth "github.com/campushub/backend/internal/pkg/auth"
)

// AuthService handles admin bootstrap and login
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *pkgauth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.IUserRepository, jwtService *pkgauth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// RegisterAdmin creates the first admin identity. The endpoint is
// unauthenticated; once any admin exists the path is permanently
// closed regardless of caller.
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.User, error) {
	adminExists, err := s.userRepo.AdminExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("error checking for existing admin: %w", err)
	}
	if adminExists {
		return nil, apperrors.ErrAdminAlreadyExists
	}

	emailTaken, err := s.userRepo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("Admin account bootstrapped")
	return user, nil
}

// Login authenticates a user and returns a signed token with a user
// summary. An unknown email and a wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user for login: %w", err)
	}

	if !pkgauth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User: dto.UserSummary{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     string(user.Role),
		},
	}, nil
}
