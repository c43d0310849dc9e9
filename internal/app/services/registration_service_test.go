package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

type fakeRegistrationStore struct {
	registrations map[int64]*models.Registration
	nextID        int64
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{registrations: make(map[int64]*models.Registration), nextID: 1}
}

func (s *fakeRegistrationStore) Create(_ context.Context, registration *models.Registration) (int64, error) {
	id := s.nextID
	s.nextID++
	registration.ID = id
	s.registrations[id] = registration
	return id, nil
}

func (s *fakeRegistrationStore) GetByID(_ context.Context, id int64) (*models.Registration, error) {
	registration, ok := s.registrations[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("registration not found")
	}
	return registration, nil
}

func (s *fakeRegistrationStore) List(_ context.Context, _ repositories.ListParams, filter repositories.RegistrationFilter) ([]*models.Registration, error) {
	var out []*models.Registration
	for _, registration := range s.registrations {
		if filter.CourseID != 0 && registration.CourseID != filter.CourseID {
			continue
		}
		if filter.UserID != 0 && registration.UserID != filter.UserID {
			continue
		}
		if filter.StatusID != 0 && registration.StatusID != filter.StatusID {
			continue
		}
		out = append(out, registration)
	}
	return out, nil
}

func (s *fakeRegistrationStore) UpdateStatus(_ context.Context, id, statusID int64) error {
	registration, ok := s.registrations[id]
	if !ok {
		return apperrors.NewResourceNotFoundError("registration not found")
	}
	registration.StatusID = statusID
	return nil
}

func (s *fakeRegistrationStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.registrations[id]; !ok {
		return apperrors.NewResourceNotFoundError("registration not found")
	}
	delete(s.registrations, id)
	return nil
}

func (s *fakeRegistrationStore) PairExists(_ context.Context, courseID, userID int64) (bool, error) {
	for _, registration := range s.registrations {
		if registration.CourseID == courseID && registration.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func newRegistrationServiceForTest(store *fakeRegistrationStore) RegistrationService {
	return NewRegistrationService(store,
		newFakeChecker(1), // courses
		newFakeChecker(5), // users
		newFakeChecker(20, 21))
}

func TestRegistrationService_CreateRegistration(t *testing.T) {
	store := newFakeRegistrationStore()
	svc := newRegistrationServiceForTest(store)

	id, err := svc.CreateRegistration(context.Background(), &models.Registration{
		CourseID: 1, UserID: 5, StatusID: 20,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestRegistrationService_CreateRegistration_DuplicatePair(t *testing.T) {
	store := newFakeRegistrationStore()
	svc := newRegistrationServiceForTest(store)

	_, err := svc.CreateRegistration(context.Background(), &models.Registration{
		CourseID: 1, UserID: 5, StatusID: 20,
	})
	require.NoError(t, err)

	// A second registration for the same pair is a conflict even with a
	// different status.
	_, err = svc.CreateRegistration(context.Background(), &models.Registration{
		CourseID: 1, UserID: 5, StatusID: 21,
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegistrationService_CreateRegistration_UnknownReferences(t *testing.T) {
	svc := newRegistrationServiceForTest(newFakeRegistrationStore())

	tests := []struct {
		name         string
		registration models.Registration
	}{
		{"unknown course", models.Registration{CourseID: 99, UserID: 5, StatusID: 20}},
		{"unknown user", models.Registration{CourseID: 1, UserID: 99, StatusID: 20}},
		{"unknown status", models.Registration{CourseID: 1, UserID: 5, StatusID: 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registration := tt.registration
			_, err := svc.CreateRegistration(context.Background(), &registration)
			require.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
		})
	}
}

func TestRegistrationService_UpdateRegistrationStatus(t *testing.T) {
	store := newFakeRegistrationStore()
	svc := newRegistrationServiceForTest(store)

	id, err := svc.CreateRegistration(context.Background(), &models.Registration{
		CourseID: 1, UserID: 5, StatusID: 20,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRegistrationStatus(context.Background(), id, 21))

	got, err := svc.GetRegistrationByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, int64(21), got.StatusID)
}

func TestRegistrationService_UpdateRegistrationStatus_UnknownStatus(t *testing.T) {
	store := newFakeRegistrationStore()
	svc := newRegistrationServiceForTest(store)

	id, err := svc.CreateRegistration(context.Background(), &models.Registration{
		CourseID: 1, UserID: 5, StatusID: 20,
	})
	require.NoError(t, err)

	err = svc.UpdateRegistrationStatus(context.Background(), id, 99)
	require.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestRegistrationService_GetRegistrations_Filtered(t *testing.T) {
	store := newFakeRegistrationStore()
	store.registrations[1] = &models.Registration{ID: 1, CourseID: 1, UserID: 5, StatusID: 20}
	store.registrations[2] = &models.Registration{ID: 2, CourseID: 1, UserID: 6, StatusID: 21}
	store.nextID = 3
	svc := newRegistrationServiceForTest(store)

	got, err := svc.GetRegistrations(context.Background(), repositories.ListParams{},
		repositories.RegistrationFilter{StatusID: 21})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}

func TestRegistrationService_DeleteRegistration(t *testing.T) {
	store := newFakeRegistrationStore()
	svc := newRegistrationServiceForTest(store)

	id, err := svc.CreateRegistration(context.Background(), &models.Registration{
		CourseID: 1, UserID: 5, StatusID: 20,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRegistration(context.Background(), id))

	_, err = svc.GetRegistrationByID(context.Background(), id)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
