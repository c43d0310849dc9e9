package dto

// LookupRequest carries create/update data for a reference table row
type LookupRequest struct {
	Label       string  `json:"label" binding:"required"`
	Description *string `json:"description"`
}
