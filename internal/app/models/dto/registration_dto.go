package dto

// RegistrationRequest carries create data for a registration
type RegistrationRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
	UserID   int64 `json:"userId" binding:"required"`
	StatusID int64 `json:"statusId" binding:"required"`
}

// RegistrationStatusUpdateRequest changes the status of a registration
type RegistrationStatusUpdateRequest struct {
	StatusID int64 `json:"statusId" binding:"required"`
}
