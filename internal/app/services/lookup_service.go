package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// LookupStore is the repository surface the lookup service depends on
type LookupStore interface {
	Create(ctx context.Context, lookup *models.Lookup) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Lookup, error)
	GetByLabel(ctx context.Context, label string) (*models.Lookup, error)
	List(ctx context.Context, params repositories.ListParams) ([]*models.Lookup, error)
	Update(ctx context.Context, lookup *models.Lookup) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// LookupService defines operations on one reference table
// (delivery modes, event types or registration statuses).
type LookupService interface {
	Create(ctx context.Context, lookup *models.Lookup) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Lookup, error)
	List(ctx context.Context, params repositories.ListParams) ([]*models.Lookup, error)
	Update(ctx context.Context, lookup *models.Lookup) error
	Delete(ctx context.Context, id int64) error
}

type lookupServiceImpl struct {
	store LookupStore
}

// NewLookupService creates a new lookup service instance
func NewLookupService(store LookupStore) LookupService {
	return &lookupServiceImpl{store: store}
}

func validateLookup(lookup *models.Lookup) error {
	if lookup == nil {
		return fmt.Errorf("%w: lookup is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(lookup.Label) == "" {
		return apperrors.NewValidationError("label cannot be empty")
	}
	return nil
}

// Create creates a new reference table row
func (s *lookupServiceImpl) Create(ctx context.Context, lookup *models.Lookup) (int64, error) {
	if err := validateLookup(lookup); err != nil {
		return 0, err
	}
	lookup.Label = strings.TrimSpace(lookup.Label)

	return s.store.Create(ctx, lookup)
}

// GetByID retrieves a reference table row by ID
func (s *lookupServiceImpl) GetByID(ctx context.Context, id int64) (*models.Lookup, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid id")
	}
	return s.store.GetByID(ctx, id)
}

// List retrieves reference table rows
func (s *lookupServiceImpl) List(ctx context.Context, params repositories.ListParams) ([]*models.Lookup, error) {
	return s.store.List(ctx, params)
}

// Update updates a reference table row
func (s *lookupServiceImpl) Update(ctx context.Context, lookup *models.Lookup) error {
	if err := validateLookup(lookup); err != nil {
		return err
	}
	if lookup.ID <= 0 {
		return apperrors.NewValidationError("invalid id")
	}
	lookup.Label = strings.TrimSpace(lookup.Label)

	return s.store.Update(ctx, lookup)
}

// Delete deletes a reference table row. Rows still referenced by a
// course, event or registration surface a restricted delete error from
// the store.
func (s *lookupServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid id")
	}
	return s.store.Delete(ctx, id)
}
