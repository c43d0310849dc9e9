package dto

// VenueRequest carries create/update data for a venue
type VenueRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      *string `json:"address"`
	MapURL       *string `json:"mapUrl"`
	Notes        *string `json:"notes"`
	RoomCapacity *int32  `json:"roomCapacity"`
}
