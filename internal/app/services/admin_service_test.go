package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
)

type fakeAdminStore struct {
	admins map[int64]*models.Admin
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]*models.Admin), nextID: 1}
}

func (s *fakeAdminStore) Create(_ context.Context, admin *models.Admin) (int64, error) {
	id := s.nextID
	s.nextID++
	admin.ID = id
	s.admins[id] = admin
	return id, nil
}

func (s *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	admin, ok := s.admins[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("admin not found")
	}
	return admin, nil
}

func (s *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, admin := range s.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("admin not found")
}

func (s *fakeAdminStore) List(_ context.Context, _ repositories.ListParams) ([]*models.Admin, error) {
	out := make([]*models.Admin, 0, len(s.admins))
	for _, admin := range s.admins {
		out = append(out, admin)
	}
	return out, nil
}

func (s *fakeAdminStore) Update(_ context.Context, id int64, update repositories.AdminUpdate) error {
	admin, ok := s.admins[id]
	if !ok {
		return apperrors.NewResourceNotFoundError("admin not found")
	}
	if update.Email != nil {
		admin.Email = *update.Email
	}
	if update.FullName != nil {
		admin.FullName = *update.FullName
	}
	if update.PasswordHash != nil {
		admin.PasswordHash = *update.PasswordHash
	}
	if update.IsActive != nil {
		admin.IsActive = *update.IsActive
	}
	return nil
}

func (s *fakeAdminStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.admins[id]; !ok {
		return apperrors.NewResourceNotFoundError("admin not found")
	}
	delete(s.admins, id)
	return nil
}

func (s *fakeAdminStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, admin := range s.admins {
		if admin.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestAdminService_CreateAdmin(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminService(store)

	admin, err := svc.CreateAdmin(context.Background(), "ops@example.com", "Ops Person", "longenough")
	require.NoError(t, err)
	require.Equal(t, "ops@example.com", admin.Email)
	require.True(t, admin.IsActive)

	// The stored credential is a hash, never the plaintext.
	require.NotEqual(t, "longenough", admin.PasswordHash)
	require.True(t, auth.CheckPassword(admin.PasswordHash, "longenough"))
}

func TestAdminService_CreateAdmin_ShortPassword(t *testing.T) {
	svc := NewAdminService(newFakeAdminStore())

	_, err := svc.CreateAdmin(context.Background(), "ops@example.com", "Ops Person", "short")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var ce *apperrors.CustomError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "password", ce.Field)
}

func TestAdminService_CreateAdmin_DuplicateEmail(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminService(store)

	_, err := svc.CreateAdmin(context.Background(), "ops@example.com", "Ops Person", "longenough")
	require.NoError(t, err)

	_, err = svc.CreateAdmin(context.Background(), "ops@example.com", "Another Person", "longenough")
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAdminService_UpdateAdmin_Partial(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminService(store)

	admin, err := svc.CreateAdmin(context.Background(), "ops@example.com", "Ops Person", "longenough")
	require.NoError(t, err)
	originalHash := admin.PasswordHash

	// Only the name changes; email, password and active flag stay.
	name := "Renamed Person"
	require.NoError(t, svc.UpdateAdmin(context.Background(), admin.ID, nil, &name, nil, nil))

	got, err := svc.GetAdminByID(context.Background(), admin.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed Person", got.FullName)
	require.Equal(t, "ops@example.com", got.Email)
	require.Equal(t, originalHash, got.PasswordHash)
	require.True(t, got.IsActive)
}

func TestAdminService_UpdateAdmin_RehashesPassword(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminService(store)

	admin, err := svc.CreateAdmin(context.Background(), "ops@example.com", "Ops Person", "longenough")
	require.NoError(t, err)
	originalHash := admin.PasswordHash

	password := "evenlonger"
	require.NoError(t, svc.UpdateAdmin(context.Background(), admin.ID, nil, nil, &password, nil))

	got, err := svc.GetAdminByID(context.Background(), admin.ID)
	require.NoError(t, err)
	require.NotEqual(t, originalHash, got.PasswordHash)
	require.True(t, auth.CheckPassword(got.PasswordHash, "evenlonger"))
}

func TestAdminService_UpdateAdmin_Deactivate(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminService(store)

	admin, err := svc.CreateAdmin(context.Background(), "ops@example.com", "Ops Person", "longenough")
	require.NoError(t, err)

	inactive := false
	require.NoError(t, svc.UpdateAdmin(context.Background(), admin.ID, nil, nil, nil, &inactive))

	got, err := svc.GetAdminByID(context.Background(), admin.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestAdminService_DeleteAdmin(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminService(store)

	admin, err := svc.CreateAdmin(context.Background(), "ops@example.com", "Ops Person", "longenough")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdmin(context.Background(), admin.ID))

	_, err = svc.GetAdminByID(context.Background(), admin.ID)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
