package services

import (
	"context"
	"strings"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// VenueStore is the repository surface the venue service depends on
type VenueStore interface {
	Create(ctx context.Context, venue *models.Venue) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Venue, error)
	List(ctx context.Context, params repositories.ListParams) ([]*models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int64) error
}

// VenueService defines the interface for venue-related operations
type VenueService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (int64, error)
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
	GetVenues(ctx context.Context, params repositories.ListParams) ([]*models.Venue, error)
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

type venueServiceImpl struct {
	venueStore VenueStore
}

// NewVenueService creates a new venue service instance
func NewVenueService(venueStore VenueStore) VenueService {
	return &venueServiceImpl{venueStore: venueStore}
}

func validateVenue(venue *models.Venue) error {
	if venue == nil {
		return apperrors.NewValidationError("venue is nil")
	}
	if strings.TrimSpace(venue.Name) == "" {
		return apperrors.NewFieldValidationError("name cannot be empty", "name")
	}
	if venue.RoomCapacity != nil && *venue.RoomCapacity <= 0 {
		return apperrors.NewFieldValidationError("room capacity must be greater than zero", "roomCapacity")
	}
	return nil
}

// CreateVenue creates a new venue
func (s *venueServiceImpl) CreateVenue(ctx context.Context, venue *models.Venue) (int64, error) {
	if err := validateVenue(venue); err != nil {
		return 0, err
	}
	return s.venueStore.Create(ctx, venue)
}

// GetVenueByID retrieves a venue by ID
func (s *venueServiceImpl) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid venue ID")
	}
	return s.venueStore.GetByID(ctx, id)
}

// GetVenues retrieves venues
func (s *venueServiceImpl) GetVenues(ctx context.Context, params repositories.ListParams) ([]*models.Venue, error) {
	return s.venueStore.List(ctx, params)
}

// UpdateVenue updates an existing venue
func (s *venueServiceImpl) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	if err := validateVenue(venue); err != nil {
		return err
	}
	if venue.ID <= 0 {
		return apperrors.NewValidationError("invalid venue ID")
	}
	return s.venueStore.Update(ctx, venue)
}

// DeleteVenue deletes a venue. Courses and events that pointed at it
// keep existing with a cleared venue reference.
func (s *venueServiceImpl) DeleteVenue(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid venue ID")
	}
	return s.venueStore.Delete(ctx, id)
}
