package services

import (
	"context"
	"strings"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// InstructorStore is the repository surface the instructor service depends on
type InstructorStore interface {
	Create(ctx context.Context, instructor *models.Instructor) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	List(ctx context.Context, params repositories.ListParams) ([]*models.Instructor, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	CreateInstructor(ctx context.Context, instructor *models.Instructor) (int64, error)
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetInstructors(ctx context.Context, params repositories.ListParams) ([]*models.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor *models.Instructor) error
	DeleteInstructor(ctx context.Context, id int64) error
}

type instructorServiceImpl struct {
	instructorStore InstructorStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorStore InstructorStore) InstructorService {
	return &instructorServiceImpl{instructorStore: instructorStore}
}

func validateInstructor(instructor *models.Instructor) error {
	if instructor == nil {
		return apperrors.NewValidationError("instructor is nil")
	}
	if strings.TrimSpace(instructor.FullName) == "" {
		return apperrors.NewFieldValidationError("full name cannot be empty", "fullName")
	}
	return nil
}

// CreateInstructor creates a new instructor
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, instructor *models.Instructor) (int64, error) {
	if err := validateInstructor(instructor); err != nil {
		return 0, err
	}
	return s.instructorStore.Create(ctx, instructor)
}

// GetInstructorByID retrieves an instructor by ID
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid instructor ID")
	}
	return s.instructorStore.GetByID(ctx, id)
}

// GetInstructors retrieves instructors
func (s *instructorServiceImpl) GetInstructors(ctx context.Context, params repositories.ListParams) ([]*models.Instructor, error) {
	return s.instructorStore.List(ctx, params)
}

// UpdateInstructor updates an existing instructor
func (s *instructorServiceImpl) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := validateInstructor(instructor); err != nil {
		return err
	}
	if instructor.ID <= 0 {
		return apperrors.NewValidationError("invalid instructor ID")
	}
	return s.instructorStore.Update(ctx, instructor)
}

// DeleteInstructor deletes an instructor along with their course assignments
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid instructor ID")
	}
	return s.instructorStore.Delete(ctx, id)
}
