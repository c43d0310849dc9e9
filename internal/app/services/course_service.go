package services

import (
	"context"
	"strings"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// CourseStore is the repository surface the course service depends on
type CourseStore interface {
	Create(ctx context.Context, course *models.Course, instructorIDs []int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, params repositories.ListParams, pastOnly bool) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course, instructorIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

// ReferenceChecker reports whether a row with the id exists. The course
// service uses it to resolve delivery mode, venue and instructor
// references before writing.
type ReferenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course, instructorIDs []int64) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourses(ctx context.Context, params repositories.ListParams) ([]*models.Course, error)
	GetPastCourses(ctx context.Context, params repositories.ListParams) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course, instructorIDs []int64) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseStore   CourseStore
	deliveryModes ReferenceChecker
	venues        ReferenceChecker
	instructors   ReferenceChecker
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore, deliveryModes, venues, instructors ReferenceChecker) CourseService {
	return &courseServiceImpl{
		courseStore:   courseStore,
		deliveryModes: deliveryModes,
		venues:        venues,
		instructors:   instructors,
	}
}

func validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course is nil")
	}
	if strings.TrimSpace(course.Title) == "" {
		return apperrors.NewFieldValidationError("title cannot be empty", "title")
	}
	if course.Capacity != nil && *course.Capacity <= 0 {
		return apperrors.NewFieldValidationError("capacity must be greater than zero", "capacity")
	}
	if course.SessionCounts != nil && *course.SessionCounts < 0 {
		return apperrors.NewFieldValidationError("session counts cannot be negative", "sessionCounts")
	}
	if course.SessionDurationMinutes != nil && *course.SessionDurationMinutes <= 0 {
		return apperrors.NewFieldValidationError("session duration must be greater than zero", "sessionDurationMinutes")
	}
	if course.StartDate != nil && course.EndDate != nil && course.EndDate.Before(*course.StartDate) {
		return apperrors.NewFieldValidationError("end date cannot be before start date", "endDate")
	}
	return nil
}

// resolveReferences checks that the delivery mode, the optional venue
// and every assigned instructor exist before the write reaches the
// database. Concurrent deletes are still caught by the foreign key
// constraints.
func (s *courseServiceImpl) resolveReferences(ctx context.Context, course *models.Course, instructorIDs []int64) error {
	exists, err := s.deliveryModes.Exists(ctx, course.DeliveryModeID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewReferenceError("delivery mode does not exist")
	}

	if course.VenueID != nil {
		exists, err := s.venues.Exists(ctx, *course.VenueID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewReferenceError("venue does not exist")
		}
	}

	seen := make(map[int64]struct{}, len(instructorIDs))
	for _, instructorID := range instructorIDs {
		if _, dup := seen[instructorID]; dup {
			return apperrors.NewFieldValidationError("instructor listed more than once", "instructorIds")
		}
		seen[instructorID] = struct{}{}

		exists, err := s.instructors.Exists(ctx, instructorID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewReferenceError("instructor does not exist")
		}
	}

	return nil
}

// CreateCourse creates a new course with its instructor assignments
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course, instructorIDs []int64) (int64, error) {
	if err := validateCourse(course); err != nil {
		return 0, err
	}
	if err := s.resolveReferences(ctx, course, instructorIDs); err != nil {
		return 0, err
	}
	return s.courseStore.Create(ctx, course, instructorIDs)
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}
	return s.courseStore.GetByID(ctx, id)
}

// GetCourses retrieves courses
func (s *courseServiceImpl) GetCourses(ctx context.Context, params repositories.ListParams) ([]*models.Course, error) {
	return s.courseStore.List(ctx, params, false)
}

// GetPastCourses retrieves courses whose end date has passed
func (s *courseServiceImpl) GetPastCourses(ctx context.Context, params repositories.ListParams) ([]*models.Course, error) {
	return s.courseStore.List(ctx, params, true)
}

// UpdateCourse updates a course and replaces its instructor assignments
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course, instructorIDs []int64) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	if course.ID <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}
	if err := s.resolveReferences(ctx, course, instructorIDs); err != nil {
		return err
	}
	return s.courseStore.Update(ctx, course, instructorIDs)
}

// DeleteCourse deletes a course along with its registrations and
// instructor assignments
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}
	return s.courseStore.Delete(ctx, id)
}
