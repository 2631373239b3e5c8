package models

// ServiceType is a catalog entry for the services the clinic offers.
// Read-only from the API's perspective; rows are seeded by migration.
type ServiceType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
