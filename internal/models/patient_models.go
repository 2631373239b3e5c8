package models

import "time"

// Patient represents a pet owned by a Client.
type Patient struct {
	ID        int64      `json:"id" db:"id"`
	ClientID  int64      `json:"client_id" db:"client_id"`
	Name      string     `json:"name" db:"name" binding:"required"`
	Species   string     `json:"species" db:"species" binding:"required"`
	Breed     *string    `json:"breed,omitempty" db:"breed"`
	BirthDate *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Gender    *string    `json:"gender,omitempty" db:"gender"`
	Weight    *float64   `json:"weight,omitempty" db:"weight"`
	PhotoURL  *string    `json:"photo_url,omitempty" db:"photo_url"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
