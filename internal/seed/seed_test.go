package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
)

type memLookupStore struct {
	kind   models.LookupKind
	rows   map[string]*models.Lookup
	nextID int64
}

func newMemLookupStore(kind models.LookupKind) *memLookupStore {
	return &memLookupStore{kind: kind, rows: make(map[string]*models.Lookup), nextID: 1}
}

func (s *memLookupStore) Kind() models.LookupKind { return s.kind }

func (s *memLookupStore) GetByLabel(_ context.Context, label string) (*models.Lookup, error) {
	row, ok := s.rows[label]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("not found")
	}
	return row, nil
}

func (s *memLookupStore) Create(_ context.Context, lookup *models.Lookup) (int64, error) {
	if _, ok := s.rows[lookup.Label]; ok {
		return 0, apperrors.NewConflictError("label already exists")
	}
	lookup.ID = s.nextID
	s.nextID++
	s.rows[lookup.Label] = lookup
	return lookup.ID, nil
}

func TestApplyLookup_DeliveryModes(t *testing.T) {
	store := newMemLookupStore(models.LookupDeliveryModes)

	created, err := ApplyLookup(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, 3, created)

	for _, label := range []string{"In-Person", "Online", "Hybrid"} {
		row, err := store.GetByLabel(context.Background(), label)
		require.NoError(t, err)
		require.Nil(t, row.Description)
	}
}

func TestApplyLookup_RegistrationStatuses(t *testing.T) {
	store := newMemLookupStore(models.LookupRegistrationStatuses)

	created, err := ApplyLookup(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, 4, created)

	row, err := store.GetByLabel(context.Background(), "Waitlisted")
	require.NoError(t, err)
	require.NotNil(t, row.Description)
}

func TestApplyLookup_Idempotent(t *testing.T) {
	store := newMemLookupStore(models.LookupEventTypes)

	created, err := ApplyLookup(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, 4, created)

	// A second run finds every label and creates nothing.
	created, err = ApplyLookup(context.Background(), store)
	require.NoError(t, err)
	require.Zero(t, created)
}

func TestApplyLookup_KeepsEditedRows(t *testing.T) {
	store := newMemLookupStore(models.LookupDeliveryModes)

	edited := "Changed by an operator"
	_, err := store.Create(context.Background(), &models.Lookup{Label: "Online", Description: &edited})
	require.NoError(t, err)

	created, err := ApplyLookup(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, 2, created)

	row, err := store.GetByLabel(context.Background(), "Online")
	require.NoError(t, err)
	require.Equal(t, edited, *row.Description)
}

type memAdminStore struct {
	admins map[string]*models.Admin
	nextID int64
}

func newMemAdminStore() *memAdminStore {
	return &memAdminStore{admins: make(map[string]*models.Admin), nextID: 1}
}

func (s *memAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	admin, ok := s.admins[email]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("not found")
	}
	return admin, nil
}

func (s *memAdminStore) Create(_ context.Context, admin *models.Admin) (int64, error) {
	if _, ok := s.admins[admin.Email]; ok {
		return 0, apperrors.NewConflictError("email already exists")
	}
	admin.ID = s.nextID
	s.nextID++
	s.admins[admin.Email] = admin
	return admin.ID, nil
}

func TestEnsureSuperuser_Creates(t *testing.T) {
	store := newMemAdminStore()

	created, err := EnsureSuperuser(context.Background(), store, "admin@example.com", "Superuser", "adminpass")
	require.NoError(t, err)
	require.True(t, created)

	admin, err := store.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.True(t, admin.IsActive)
	require.True(t, auth.CheckPassword(admin.PasswordHash, "adminpass"))
}

func TestEnsureSuperuser_NeverClobbersExisting(t *testing.T) {
	store := newMemAdminStore()

	created, err := EnsureSuperuser(context.Background(), store, "admin@example.com", "Superuser", "adminpass")
	require.NoError(t, err)
	require.True(t, created)

	existing, err := store.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	originalHash := existing.PasswordHash

	// A rotated config password must not overwrite the live credential.
	created, err = EnsureSuperuser(context.Background(), store, "admin@example.com", "Superuser", "differentpass")
	require.NoError(t, err)
	require.False(t, created)

	after, err := store.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, originalHash, after.PasswordHash)
}
