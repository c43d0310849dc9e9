package dto

// AdminCreateRequest carries create data for an admin account
type AdminCreateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminUpdateRequest carries partial update data for an admin account.
// Nil fields are left unchanged.
type AdminUpdateRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"fullName"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	IsActive *bool   `json:"isActive"`
}
