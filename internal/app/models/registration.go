package models

import "time"

// Registration links a user to a course. At most one registration may
// exist per (course, user) pair regardless of status.
type Registration struct {
	ID          int64     `json:"id"`
	CourseID    int64     `json:"courseId"`
	UserID      int64     `json:"userId"`
	StatusID    int64     `json:"statusId"`
	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Status *Lookup `json:"status,omitempty"`
}
