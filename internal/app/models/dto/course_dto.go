package dto

import (
	"time"

	"github.com/mindsethq/mindset-backend/internal/app/models"
)

// CourseRequest carries create/update data for a course. Dates are
// calendar dates in YYYY-MM-DD form.
type CourseRequest struct {
	Title                  string  `json:"title" binding:"required"`
	Description            *string `json:"description"`
	DeliveryModeID         int64   `json:"deliveryModeId" binding:"required"`
	VenueID                *int64  `json:"venueId"`
	Capacity               *int32  `json:"capacity"`
	SessionCounts          *int32  `json:"sessionCounts"`
	SessionDurationMinutes *int32  `json:"sessionDurationMinutes"`
	StartDate              *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate                *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	InstructorIDs          []int64 `json:"instructorIds"`
}

// ToModel converts the request into a Course model. Binding has already
// validated the date format, so parse errors cannot occur here.
func (r *CourseRequest) ToModel() *models.Course {
	course := &models.Course{
		Title:                  r.Title,
		Description:            r.Description,
		DeliveryModeID:         r.DeliveryModeID,
		VenueID:                r.VenueID,
		Capacity:               r.Capacity,
		SessionCounts:          r.SessionCounts,
		SessionDurationMinutes: r.SessionDurationMinutes,
	}
	if r.StartDate != nil {
		d, _ := time.Parse("2006-01-02", *r.StartDate)
		course.StartDate = &d
	}
	if r.EndDate != nil {
		d, _ := time.Parse("2006-01-02", *r.EndDate)
		course.EndDate = &d
	}
	return course
}
