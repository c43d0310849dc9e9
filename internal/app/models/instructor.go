package models

// Instructor teaches courses through the course_instructors join relation
type Instructor struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}
