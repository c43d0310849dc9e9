package dto

// InstructorRequest carries create/update data for an instructor
type InstructorRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Bio      *string `json:"bio"`
}
