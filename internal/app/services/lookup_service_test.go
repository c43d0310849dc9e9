package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

type fakeLookupStore struct {
	rows       map[int64]*models.Lookup
	nextID     int64
	restricted map[int64]bool
}

func newFakeLookupStore() *fakeLookupStore {
	return &fakeLookupStore{
		rows:       make(map[int64]*models.Lookup),
		nextID:     1,
		restricted: make(map[int64]bool),
	}
}

func (s *fakeLookupStore) Create(_ context.Context, lookup *models.Lookup) (int64, error) {
	for _, row := range s.rows {
		if row.Label == lookup.Label {
			return 0, apperrors.NewConflictError("label already exists")
		}
	}
	id := s.nextID
	s.nextID++
	lookup.ID = id
	s.rows[id] = lookup
	return id, nil
}

func (s *fakeLookupStore) GetByID(_ context.Context, id int64) (*models.Lookup, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("not found")
	}
	return row, nil
}

func (s *fakeLookupStore) GetByLabel(_ context.Context, label string) (*models.Lookup, error) {
	for _, row := range s.rows {
		if row.Label == label {
			return row, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("not found")
}

func (s *fakeLookupStore) List(_ context.Context, _ repositories.ListParams) ([]*models.Lookup, error) {
	out := make([]*models.Lookup, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	return out, nil
}

func (s *fakeLookupStore) Update(_ context.Context, lookup *models.Lookup) error {
	if _, ok := s.rows[lookup.ID]; !ok {
		return apperrors.NewResourceNotFoundError("not found")
	}
	s.rows[lookup.ID] = lookup
	return nil
}

func (s *fakeLookupStore) Delete(_ context.Context, id int64) error {
	if s.restricted[id] {
		return apperrors.NewRestrictedDeleteError("row is still referenced")
	}
	if _, ok := s.rows[id]; !ok {
		return apperrors.NewResourceNotFoundError("not found")
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeLookupStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.rows[id]
	return ok, nil
}

func TestLookupService_Create_TrimsLabel(t *testing.T) {
	store := newFakeLookupStore()
	svc := NewLookupService(store)

	id, err := svc.Create(context.Background(), &models.Lookup{Label: "  Hybrid  "})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Hybrid", got.Label)
}

func TestLookupService_Create_EmptyLabel(t *testing.T) {
	svc := NewLookupService(newFakeLookupStore())

	_, err := svc.Create(context.Background(), &models.Lookup{Label: "   "})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLookupService_Create_DuplicateLabel(t *testing.T) {
	svc := NewLookupService(newFakeLookupStore())

	_, err := svc.Create(context.Background(), &models.Lookup{Label: "Online"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &models.Lookup{Label: "Online"})
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestLookupService_Update(t *testing.T) {
	store := newFakeLookupStore()
	svc := NewLookupService(store)

	id, err := svc.Create(context.Background(), &models.Lookup{Label: "Online"})
	require.NoError(t, err)

	desc := "Delivered remotely"
	require.NoError(t, svc.Update(context.Background(), &models.Lookup{ID: id, Label: "Online", Description: &desc}))

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	require.Equal(t, "Delivered remotely", *got.Description)
}

func TestLookupService_Delete_Restricted(t *testing.T) {
	store := newFakeLookupStore()
	svc := NewLookupService(store)

	id, err := svc.Create(context.Background(), &models.Lookup{Label: "Online"})
	require.NoError(t, err)
	store.restricted[id] = true

	err = svc.Delete(context.Background(), id)
	require.ErrorIs(t, err, apperrors.ErrRestrictedDelete)

	// The row survives a blocked delete.
	_, err = svc.GetByID(context.Background(), id)
	require.NoError(t, err)
}

func TestLookupService_InvalidID(t *testing.T) {
	svc := NewLookupService(newFakeLookupStore())

	_, err := svc.GetByID(context.Background(), 0)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	require.ErrorIs(t, svc.Delete(context.Background(), -1), apperrors.ErrValidationFailed)
}
