package dto

import (
	"time"

	"github.com/mindsethq/mindset-backend/internal/app/models"
)

// EventRequest carries create/update data for an event. Timestamps are
// RFC 3339.
type EventRequest struct {
	Title          string     `json:"title" binding:"required"`
	Description    *string    `json:"description"`
	EventTypeID    int64      `json:"eventTypeId" binding:"required"`
	DeliveryModeID int64      `json:"deliveryModeId" binding:"required"`
	VenueID        *int64     `json:"venueId"`
	Capacity       *int32     `json:"capacity"`
	StartsAt       *time.Time `json:"startsAt"`
	EndsAt         *time.Time `json:"endsAt"`
}

// ToModel converts the request into an Event model
func (r *EventRequest) ToModel() *models.Event {
	return &models.Event{
		Title:          r.Title,
		Description:    r.Description,
		EventTypeID:    r.EventTypeID,
		DeliveryModeID: r.DeliveryModeID,
		VenueID:        r.VenueID,
		Capacity:       r.Capacity,
		StartsAt:       r.StartsAt,
		EndsAt:         r.EndsAt,
	}
}
