package models

import "time"

// Course is a multi-session offering tied to a delivery mode and an
// optional venue. Dates are calendar dates; a course with both dates set
// must satisfy start_date <= end_date.
type Course struct {
	ID                     int64      `json:"id"`
	Title                  string     `json:"title"`
	Description            *string    `json:"description,omitempty"`
	DeliveryModeID         int64      `json:"deliveryModeId"`
	VenueID                *int64     `json:"venueId,omitempty"`
	Capacity               *int32     `json:"capacity,omitempty"`
	SessionCounts          *int32     `json:"sessionCounts,omitempty"`
	SessionDurationMinutes *int32     `json:"sessionDurationMinutes,omitempty"`
	StartDate              *time.Time `json:"startDate,omitempty"`
	EndDate                *time.Time `json:"endDate,omitempty"`

	// Joined relations, populated on reads
	DeliveryMode *Lookup       `json:"deliveryMode,omitempty"`
	Venue        *Venue        `json:"venue,omitempty"`
	Instructors  []*Instructor `json:"instructors,omitempty"`
}
