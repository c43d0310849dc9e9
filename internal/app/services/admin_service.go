package services

import (
	"context"
	"strings"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
)

// AdminStore is the repository surface the admin service depends on
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	List(ctx context.Context, params repositories.ListParams) ([]*models.Admin, error)
	Update(ctx context.Context, id int64, update repositories.AdminUpdate) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AdminService defines the interface for admin account management
type AdminService interface {
	CreateAdmin(ctx context.Context, email, fullName, password string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id int64) (*models.Admin, error)
	GetAdmins(ctx context.Context, params repositories.ListParams) ([]*models.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, email, fullName, password *string, isActive *bool) error
	DeleteAdmin(ctx context.Context, id int64) error
}

type adminServiceImpl struct {
	adminStore AdminStore
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminStore AdminStore) AdminService {
	return &adminServiceImpl{adminStore: adminStore}
}

// CreateAdmin creates a new active admin account. The password is
// hashed before it reaches the store; the plaintext is never persisted
// or logged.
func (s *adminServiceImpl) CreateAdmin(ctx context.Context, email, fullName, password string) (*models.Admin, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" {
		return nil, apperrors.NewFieldValidationError("email cannot be empty", "email")
	}
	if fullName == "" {
		return nil, apperrors.NewFieldValidationError("full name cannot be empty", "fullName")
	}
	if len(password) < 8 {
		return nil, apperrors.NewFieldValidationError("password must be at least 8 characters", "password")
	}

	exists, err := s.adminStore.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("email already exists")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
	}

	if _, err := s.adminStore.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// GetAdminByID retrieves an admin account by ID
func (s *adminServiceImpl) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid admin ID")
	}
	return s.adminStore.GetByID(ctx, id)
}

// GetAdmins retrieves admin accounts
func (s *adminServiceImpl) GetAdmins(ctx context.Context, params repositories.ListParams) ([]*models.Admin, error) {
	return s.adminStore.List(ctx, params)
}

// UpdateAdmin applies a partial update. Nil fields keep their current
// value; a non-nil password is re-hashed.
func (s *adminServiceImpl) UpdateAdmin(ctx context.Context, id int64, email, fullName, password *string, isActive *bool) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid admin ID")
	}

	update := repositories.AdminUpdate{IsActive: isActive}

	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			return apperrors.NewFieldValidationError("email cannot be empty", "email")
		}
		update.Email = &trimmed
	}
	if fullName != nil {
		trimmed := strings.TrimSpace(*fullName)
		if trimmed == "" {
			return apperrors.NewFieldValidationError("full name cannot be empty", "fullName")
		}
		update.FullName = &trimmed
	}
	if password != nil {
		if len(*password) < 8 {
			return apperrors.NewFieldValidationError("password must be at least 8 characters", "password")
		}
		hash, err := auth.HashPassword(*password)
		if err != nil {
			return err
		}
		update.PasswordHash = &hash
	}

	return s.adminStore.Update(ctx, id, update)
}

// DeleteAdmin deletes an admin account. Accounts with authored blog
// posts cannot be deleted.
func (s *adminServiceImpl) DeleteAdmin(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid admin ID")
	}
	return s.adminStore.Delete(ctx, id)
}
