package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// fakeChecker answers Exists from a fixed id set.
type fakeChecker struct {
	ids map[int64]bool
}

func newFakeChecker(ids ...int64) *fakeChecker {
	c := &fakeChecker{ids: make(map[int64]bool, len(ids))}
	for _, id := range ids {
		c.ids[id] = true
	}
	return c
}

func (c *fakeChecker) Exists(_ context.Context, id int64) (bool, error) {
	return c.ids[id], nil
}

type fakeCourseStore struct {
	courses       map[int64]*models.Course
	nextID        int64
	lastInstrs    []int64
	createdCount  int
	deletedCourse int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course, instructorIDs []int64) (int64, error) {
	id := s.nextID
	s.nextID++
	course.ID = id
	s.courses[id] = course
	s.lastInstrs = instructorIDs
	s.createdCount++
	return id, nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("course not found")
	}
	return course, nil
}

func (s *fakeCourseStore) List(_ context.Context, _ repositories.ListParams, pastOnly bool) ([]*models.Course, error) {
	var out []*models.Course
	now := time.Now()
	for _, course := range s.courses {
		if pastOnly && (course.EndDate == nil || !course.EndDate.Before(now)) {
			continue
		}
		out = append(out, course)
	}
	return out, nil
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course, instructorIDs []int64) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.NewResourceNotFoundError("course not found")
	}
	s.courses[course.ID] = course
	s.lastInstrs = instructorIDs
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return apperrors.NewResourceNotFoundError("course not found")
	}
	delete(s.courses, id)
	s.deletedCourse = id
	return nil
}

func newCourseServiceForTest(store *fakeCourseStore) CourseService {
	return NewCourseService(store,
		newFakeChecker(1, 2, 3), // delivery modes
		newFakeChecker(10),      // venues
		newFakeChecker(100, 101))
}

func int32Ptr(v int32) *int32        { return &v }
func int64Ptr(v int64) *int64        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func validCourse() *models.Course {
	return &models.Course{
		Title:          "Foundations of Mindset",
		DeliveryModeID: 1,
	}
}

func TestCourseService_CreateCourse(t *testing.T) {
	store := newFakeCourseStore()
	svc := newCourseServiceForTest(store)

	id, err := svc.CreateCourse(context.Background(), validCourse(), []int64{100, 101})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Equal(t, []int64{100, 101}, store.lastInstrs)
}

func TestCourseService_CreateCourse_EmptyTitle(t *testing.T) {
	svc := newCourseServiceForTest(newFakeCourseStore())

	course := validCourse()
	course.Title = "   "
	_, err := svc.CreateCourse(context.Background(), course, nil)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var ce *apperrors.CustomError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "title", ce.Field)
}

func TestCourseService_CreateCourse_InvalidNumbers(t *testing.T) {
	svc := newCourseServiceForTest(newFakeCourseStore())

	tests := []struct {
		name   string
		mutate func(*models.Course)
		field  string
	}{
		{"zero capacity", func(c *models.Course) { c.Capacity = int32Ptr(0) }, "capacity"},
		{"negative session counts", func(c *models.Course) { c.SessionCounts = int32Ptr(-1) }, "sessionCounts"},
		{"zero session duration", func(c *models.Course) { c.SessionDurationMinutes = int32Ptr(0) }, "sessionDurationMinutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := validCourse()
			tt.mutate(course)
			_, err := svc.CreateCourse(context.Background(), course, nil)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var ce *apperrors.CustomError
			require.ErrorAs(t, err, &ce)
			require.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestCourseService_CreateCourse_EndBeforeStart(t *testing.T) {
	svc := newCourseServiceForTest(newFakeCourseStore())

	course := validCourse()
	course.StartDate = timePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	course.EndDate = timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	_, err := svc.CreateCourse(context.Background(), course, nil)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseService_CreateCourse_EqualDatesAllowed(t *testing.T) {
	svc := newCourseServiceForTest(newFakeCourseStore())

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	course := validCourse()
	course.StartDate = timePtr(day)
	course.EndDate = timePtr(day)
	_, err := svc.CreateCourse(context.Background(), course, nil)
	require.NoError(t, err)
}

func TestCourseService_CreateCourse_UnknownReferences(t *testing.T) {
	svc := newCourseServiceForTest(newFakeCourseStore())

	course := validCourse()
	course.DeliveryModeID = 99
	_, err := svc.CreateCourse(context.Background(), course, nil)
	require.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	course = validCourse()
	course.VenueID = int64Ptr(99)
	_, err = svc.CreateCourse(context.Background(), course, nil)
	require.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	_, err = svc.CreateCourse(context.Background(), validCourse(), []int64{999})
	require.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestCourseService_CreateCourse_DuplicateInstructor(t *testing.T) {
	svc := newCourseServiceForTest(newFakeCourseStore())

	_, err := svc.CreateCourse(context.Background(), validCourse(), []int64{100, 100})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var ce *apperrors.CustomError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "instructorIds", ce.Field)
}

func TestCourseService_UpdateCourse_ReplacesInstructors(t *testing.T) {
	store := newFakeCourseStore()
	svc := newCourseServiceForTest(store)

	id, err := svc.CreateCourse(context.Background(), validCourse(), []int64{100})
	require.NoError(t, err)

	updated := validCourse()
	updated.ID = id
	updated.Title = "Foundations of Mindset, 2nd edition"
	require.NoError(t, svc.UpdateCourse(context.Background(), updated, []int64{101}))
	require.Equal(t, []int64{101}, store.lastInstrs)

	got, err := svc.GetCourseByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Foundations of Mindset, 2nd edition", got.Title)
}

func TestCourseService_GetCourseByID_InvalidID(t *testing.T) {
	svc := newCourseServiceForTest(newFakeCourseStore())

	_, err := svc.GetCourseByID(context.Background(), 0)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseService_GetPastCourses(t *testing.T) {
	store := newFakeCourseStore()
	svc := newCourseServiceForTest(store)

	past := validCourse()
	past.StartDate = timePtr(time.Now().AddDate(0, -2, 0))
	past.EndDate = timePtr(time.Now().AddDate(0, -1, 0))
	_, err := svc.CreateCourse(context.Background(), past, nil)
	require.NoError(t, err)

	upcoming := validCourse()
	upcoming.StartDate = timePtr(time.Now().AddDate(0, 1, 0))
	upcoming.EndDate = timePtr(time.Now().AddDate(0, 2, 0))
	_, err = svc.CreateCourse(context.Background(), upcoming, nil)
	require.NoError(t, err)

	got, err := svc.GetPastCourses(context.Background(), repositories.ListParams{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, past.ID, got[0].ID)
}

func TestCourseService_DeleteCourse(t *testing.T) {
	store := newFakeCourseStore()
	svc := newCourseServiceForTest(store)

	id, err := svc.CreateCourse(context.Background(), validCourse(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(context.Background(), id))
	require.Equal(t, id, store.deletedCourse)

	_, err = svc.GetCourseByID(context.Background(), id)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
