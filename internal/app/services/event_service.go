package services

import (
	"context"
	"strings"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// EventStore is the repository surface the event service depends on
type EventStore interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context, params repositories.ListParams) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService defines the interface for event-related operations
type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) (int64, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	GetEvents(ctx context.Context, params repositories.ListParams) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	eventStore    EventStore
	eventTypes    ReferenceChecker
	deliveryModes ReferenceChecker
	venues        ReferenceChecker
}

// NewEventService creates a new event service instance
func NewEventService(eventStore EventStore, eventTypes, deliveryModes, venues ReferenceChecker) EventService {
	return &eventServiceImpl{
		eventStore:    eventStore,
		eventTypes:    eventTypes,
		deliveryModes: deliveryModes,
		venues:        venues,
	}
}

func validateEvent(event *models.Event) error {
	if event == nil {
		return apperrors.NewValidationError("event is nil")
	}
	if strings.TrimSpace(event.Title) == "" {
		return apperrors.NewFieldValidationError("title cannot be empty", "title")
	}
	if event.Capacity != nil && *event.Capacity <= 0 {
		return apperrors.NewFieldValidationError("capacity must be greater than zero", "capacity")
	}
	// Zero-length spans are rejected: an event must end strictly after
	// it starts.
	if event.StartsAt != nil && event.EndsAt != nil && !event.EndsAt.After(*event.StartsAt) {
		return apperrors.NewFieldValidationError("end time must be after start time", "endsAt")
	}
	return nil
}

func (s *eventServiceImpl) resolveReferences(ctx context.Context, event *models.Event) error {
	exists, err := s.eventTypes.Exists(ctx, event.EventTypeID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewReferenceError("event type does not exist")
	}

	exists, err = s.deliveryModes.Exists(ctx, event.DeliveryModeID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewReferenceError("delivery mode does not exist")
	}

	if event.VenueID != nil {
		exists, err := s.venues.Exists(ctx, *event.VenueID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewReferenceError("venue does not exist")
		}
	}

	return nil
}

// CreateEvent creates a new event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	if err := validateEvent(event); err != nil {
		return 0, err
	}
	if err := s.resolveReferences(ctx, event); err != nil {
		return 0, err
	}
	return s.eventStore.Create(ctx, event)
}

// GetEventByID retrieves an event by ID
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid event ID")
	}
	return s.eventStore.GetByID(ctx, id)
}

// GetEvents retrieves events
func (s *eventServiceImpl) GetEvents(ctx context.Context, params repositories.ListParams) ([]*models.Event, error) {
	return s.eventStore.List(ctx, params)
}

// UpdateEvent updates an existing event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, event *models.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if event.ID <= 0 {
		return apperrors.NewValidationError("invalid event ID")
	}
	if err := s.resolveReferences(ctx, event); err != nil {
		return err
	}
	return s.eventStore.Update(ctx, event)
}

// DeleteEvent deletes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid event ID")
	}
	return s.eventStore.Delete(ctx, id)
}
