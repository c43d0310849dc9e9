package services

import (
	"context"
	"errors"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
)

// AdminFinder resolves admin accounts by email for login
type AdminFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	adminFinder AdminFinder
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminFinder AdminFinder, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		adminFinder: adminFinder,
		jwtService:  jwtService,
	}
}

// Login verifies admin credentials and issues a bearer token. Unknown
// email, wrong password and deactivated account all fail with the same
// error so the response does not reveal which part was wrong.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	admin, err := s.adminFinder.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		logger.Error().Err(err).Int64("adminID", admin.ID).Msg("Error generating access token")
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
