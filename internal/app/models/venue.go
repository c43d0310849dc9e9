package models

// Venue is an optional physical location referenced by courses and events.
// Deleting a venue nulls out those references instead of cascading.
type Venue struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Address      *string `json:"address,omitempty"`
	MapURL       *string `json:"mapUrl,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	RoomCapacity *int32  `json:"roomCapacity,omitempty"`
}
