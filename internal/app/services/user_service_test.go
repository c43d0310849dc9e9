package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	id := s.nextID
	s.nextID++
	user.ID = id
	s.users[id] = user
	return id, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}
	return user, nil
}

func (s *fakeUserStore) List(_ context.Context, _ repositories.ListParams) ([]*models.User, error) {
	out := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return apperrors.NewResourceNotFoundError("user not found")
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return apperrors.NewResourceNotFoundError("user not found")
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) PhoneExists(_ context.Context, phone string) (bool, error) {
	for _, user := range s.users {
		if user.Phone != nil && *user.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func TestUserService_CreateUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	id, err := svc.CreateUser(context.Background(), &models.User{
		FullName: "Jordan Attendant",
		Email:    "jordan@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.CreateUser(context.Background(), &models.User{Email: "jordan@example.com"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateUser(context.Background(), &models.User{FullName: "Jordan Attendant"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	_, err := svc.CreateUser(context.Background(), &models.User{
		FullName: "Jordan Attendant",
		Email:    "jordan@example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), &models.User{
		FullName: "Other Person",
		Email:    "jordan@example.com",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserService_CreateUser_DuplicatePhone(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	_, err := svc.CreateUser(context.Background(), &models.User{
		FullName: "Jordan Attendant",
		Email:    "jordan@example.com",
		Phone:    strPtr("+15550100"),
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), &models.User{
		FullName: "Other Person",
		Email:    "other@example.com",
		Phone:    strPtr("+15550100"),
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserService_UpdateUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	id, err := svc.CreateUser(context.Background(), &models.User{
		FullName: "Jordan Attendant",
		Email:    "jordan@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateUser(context.Background(), &models.User{
		ID:       id,
		FullName: "Jordan Renamed",
		Email:    "jordan@example.com",
	}))

	got, err := svc.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Jordan Renamed", got.FullName)
}

func TestUserService_DeleteUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	id, err := svc.CreateUser(context.Background(), &models.User{
		FullName: "Jordan Attendant",
		Email:    "jordan@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), id))

	_, err = svc.GetUserByID(context.Background(), id)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
