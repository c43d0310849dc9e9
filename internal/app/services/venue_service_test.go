package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

type fakeVenueStore struct {
	venues map[int64]*models.Venue
	nextID int64
}

func newFakeVenueStore() *fakeVenueStore {
	return &fakeVenueStore{venues: make(map[int64]*models.Venue), nextID: 1}
}

func (s *fakeVenueStore) Create(_ context.Context, venue *models.Venue) (int64, error) {
	id := s.nextID
	s.nextID++
	venue.ID = id
	s.venues[id] = venue
	return id, nil
}

func (s *fakeVenueStore) GetByID(_ context.Context, id int64) (*models.Venue, error) {
	venue, ok := s.venues[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("venue not found")
	}
	return venue, nil
}

func (s *fakeVenueStore) List(_ context.Context, _ repositories.ListParams) ([]*models.Venue, error) {
	out := make([]*models.Venue, 0, len(s.venues))
	for _, venue := range s.venues {
		out = append(out, venue)
	}
	return out, nil
}

func (s *fakeVenueStore) Update(_ context.Context, venue *models.Venue) error {
	if _, ok := s.venues[venue.ID]; !ok {
		return apperrors.NewResourceNotFoundError("venue not found")
	}
	s.venues[venue.ID] = venue
	return nil
}

func (s *fakeVenueStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.venues[id]; !ok {
		return apperrors.NewResourceNotFoundError("venue not found")
	}
	delete(s.venues, id)
	return nil
}

func TestVenueService_CreateVenue(t *testing.T) {
	store := newFakeVenueStore()
	svc := NewVenueService(store)

	id, err := svc.CreateVenue(context.Background(), &models.Venue{
		Name:         "Main Hall",
		RoomCapacity: int32Ptr(40),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestVenueService_CreateVenue_Validation(t *testing.T) {
	svc := NewVenueService(newFakeVenueStore())

	_, err := svc.CreateVenue(context.Background(), &models.Venue{Name: "  "})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateVenue(context.Background(), &models.Venue{
		Name:         "Main Hall",
		RoomCapacity: int32Ptr(0),
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var ce *apperrors.CustomError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "roomCapacity", ce.Field)
}

func TestVenueService_UpdateVenue(t *testing.T) {
	store := newFakeVenueStore()
	svc := NewVenueService(store)

	id, err := svc.CreateVenue(context.Background(), &models.Venue{Name: "Main Hall"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateVenue(context.Background(), &models.Venue{
		ID:   id,
		Name: "Annex Hall",
	}))

	got, err := svc.GetVenueByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Annex Hall", got.Name)
}

func TestVenueService_DeleteVenue(t *testing.T) {
	store := newFakeVenueStore()
	svc := NewVenueService(store)

	id, err := svc.CreateVenue(context.Background(), &models.Venue{Name: "Main Hall"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVenue(context.Background(), id))

	_, err = svc.GetVenueByID(context.Background(), id)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
