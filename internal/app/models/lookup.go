package models

// LookupKind identifies one of the reference tables.
type LookupKind string

const (
	LookupDeliveryModes        LookupKind = "delivery_modes"
	LookupEventTypes           LookupKind = "event_types"
	LookupRegistrationStatuses LookupKind = "registration_statuses"
)

// Table returns the database table backing the kind.
func (k LookupKind) Table() string {
	return string(k)
}

// Lookup is a row in one of the small fixed-vocabulary reference tables
// (DeliveryMode, EventType, RegistrationStatus). All three share the same
// shape and are addressed by LookupKind.
type Lookup struct {
	ID          int64   `json:"id"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
}
