package services

import (
	"context"
	"strings"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// UserStore is the repository surface the user service depends on
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, params repositories.ListParams) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
}

// UserService defines the interface for course attendant operations
type UserService interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUsers(ctx context.Context, params repositories.ListParams) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	userStore UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore) UserService {
	return &userServiceImpl{userStore: userStore}
}

func validateUser(user *models.User) error {
	if user == nil {
		return apperrors.NewValidationError("user is nil")
	}
	if strings.TrimSpace(user.FullName) == "" {
		return apperrors.NewFieldValidationError("full name cannot be empty", "fullName")
	}
	if strings.TrimSpace(user.Email) == "" {
		return apperrors.NewFieldValidationError("email cannot be empty", "email")
	}
	return nil
}

// CreateUser creates a new course attendant. Email and phone uniqueness
// checks here are advisory; the database constraints remain the final
// arbiter under concurrent writes.
func (s *userServiceImpl) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	if err := validateUser(user); err != nil {
		return 0, err
	}

	exists, err := s.userStore.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperrors.NewConflictError("email already exists")
	}

	if user.Phone != nil {
		exists, err := s.userStore.PhoneExists(ctx, *user.Phone)
		if err != nil {
			return 0, err
		}
		if exists {
			return 0, apperrors.NewConflictError("phone already exists")
		}
	}

	return s.userStore.Create(ctx, user)
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid user ID")
	}
	return s.userStore.GetByID(ctx, id)
}

// GetUsers retrieves users
func (s *userServiceImpl) GetUsers(ctx context.Context, params repositories.ListParams) ([]*models.User, error) {
	return s.userStore.List(ctx, params)
}

// UpdateUser updates an existing user
func (s *userServiceImpl) UpdateUser(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	if user.ID <= 0 {
		return apperrors.NewValidationError("invalid user ID")
	}
	return s.userStore.Update(ctx, user)
}

// DeleteUser deletes a user along with their registrations
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid user ID")
	}
	return s.userStore.Delete(ctx, id)
}
