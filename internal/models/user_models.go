package models

import "time"

// User is the identity record behind every account. The boolean role selects
// which profile table holds the rest of the data (false = cliente,
// true = veterinario).
type User struct {
	ID             int64     `json:"id" db:"id"`
	IsVeterinarian bool      `json:"role" db:"role"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Client is a pet-owning profile linked 1:1 to a User.
type Client struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"fullname" binding:"required"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Veterinarian is a staff profile linked 1:1 to a User.
type Veterinarian struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"fullname" binding:"required"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Account is the tagged variant returned by register/login: a User plus
// exactly one profile, selected by User.IsVeterinarian. Callers branch on
// the flag, never on a value's runtime type.
type Account struct {
	User         User
	Client       *Client
	Veterinarian *Veterinarian
}

// FullName returns the profile name regardless of role.
func (a *Account) FullName() string {
	if a.User.IsVeterinarian {
		return a.Veterinarian.FullName
	}
	return a.Client.FullName
}

// Phone returns the profile phone regardless of role.
func (a *Account) Phone() *string {
	if a.User.IsVeterinarian {
		return a.Veterinarian.Phone
	}
	return a.Client.Phone
}
