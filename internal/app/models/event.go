package models

import "time"

// Event is a one-off occurrence such as a talk, webinar or book-club
// session. An event with both timestamps set must satisfy
// ends_at > starts_at (zero-length spans are rejected).
type Event struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	EventTypeID    int64      `json:"eventTypeId"`
	DeliveryModeID int64      `json:"deliveryModeId"`
	VenueID        *int64     `json:"venueId,omitempty"`
	Capacity       *int32     `json:"capacity,omitempty"`
	StartsAt       *time.Time `json:"startsAt,omitempty"`
	EndsAt         *time.Time `json:"endsAt,omitempty"`

	EventType    *Lookup `json:"eventType,omitempty"`
	DeliveryMode *Lookup `json:"deliveryMode,omitempty"`
	Venue        *Venue  `json:"venue,omitempty"`
}
