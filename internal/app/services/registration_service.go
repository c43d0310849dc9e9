package services

import (
	"context"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// RegistrationStore is the repository surface the registration service
// depends on
type RegistrationStore interface {
	Create(ctx context.Context, registration *models.Registration) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	List(ctx context.Context, params repositories.ListParams, filter repositories.RegistrationFilter) ([]*models.Registration, error)
	UpdateStatus(ctx context.Context, id, statusID int64) error
	Delete(ctx context.Context, id int64) error
	PairExists(ctx context.Context, courseID, userID int64) (bool, error)
}

// RegistrationService defines the interface for registration operations
type RegistrationService interface {
	CreateRegistration(ctx context.Context, registration *models.Registration) (int64, error)
	GetRegistrationByID(ctx context.Context, id int64) (*models.Registration, error)
	GetRegistrations(ctx context.Context, params repositories.ListParams, filter repositories.RegistrationFilter) ([]*models.Registration, error)
	UpdateRegistrationStatus(ctx context.Context, id, statusID int64) error
	DeleteRegistration(ctx context.Context, id int64) error
}

type registrationServiceImpl struct {
	registrationStore RegistrationStore
	courses           ReferenceChecker
	users             ReferenceChecker
	statuses          ReferenceChecker
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(registrationStore RegistrationStore, courses, users, statuses ReferenceChecker) RegistrationService {
	return &registrationServiceImpl{
		registrationStore: registrationStore,
		courses:           courses,
		users:             users,
		statuses:          statuses,
	}
}

// CreateRegistration registers a user for a course. A user may hold at
// most one registration per course regardless of status; a second
// attempt is a conflict, not an update.
func (s *registrationServiceImpl) CreateRegistration(ctx context.Context, registration *models.Registration) (int64, error) {
	if registration == nil {
		return 0, apperrors.NewValidationError("registration is nil")
	}

	exists, err := s.courses.Exists(ctx, registration.CourseID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.NewReferenceError("course does not exist")
	}

	exists, err = s.users.Exists(ctx, registration.UserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.NewReferenceError("user does not exist")
	}

	exists, err = s.statuses.Exists(ctx, registration.StatusID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.NewReferenceError("registration status does not exist")
	}

	taken, err := s.registrationStore.PairExists(ctx, registration.CourseID, registration.UserID)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, apperrors.NewConflictError("user is already registered for this course")
	}

	return s.registrationStore.Create(ctx, registration)
}

// GetRegistrationByID retrieves a registration by ID
func (s *registrationServiceImpl) GetRegistrationByID(ctx context.Context, id int64) (*models.Registration, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid registration ID")
	}
	return s.registrationStore.GetByID(ctx, id)
}

// GetRegistrations retrieves registrations matching the filter
func (s *registrationServiceImpl) GetRegistrations(ctx context.Context, params repositories.ListParams, filter repositories.RegistrationFilter) ([]*models.Registration, error) {
	return s.registrationStore.List(ctx, params, filter)
}

// UpdateRegistrationStatus moves a registration to a new status
func (s *registrationServiceImpl) UpdateRegistrationStatus(ctx context.Context, id, statusID int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid registration ID")
	}

	exists, err := s.statuses.Exists(ctx, statusID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewReferenceError("registration status does not exist")
	}

	return s.registrationStore.UpdateStatus(ctx, id, statusID)
}

// DeleteRegistration deletes a registration
func (s *registrationServiceImpl) DeleteRegistration(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid registration ID")
	}
	return s.registrationStore.Delete(ctx, id)
}
