package models

import (
	"strings"
	"time"
)

// AppointmentStatus defines the type for appointment statuses.
type AppointmentStatus string

const (
	AppointmentStatusPendiente  AppointmentStatus = "pendiente"
	AppointmentStatusConfirmada AppointmentStatus = "confirmada"
	AppointmentStatusCompletada AppointmentStatus = "completada"
	AppointmentStatusCancelada  AppointmentStatus = "cancelada"
)

// IsValidAppointmentStatus checks membership in the full stored vocabulary.
func IsValidAppointmentStatus(status string) bool {
	switch AppointmentStatus(status) {
	case AppointmentStatusPendiente,
		AppointmentStatusConfirmada,
		AppointmentStatusCompletada,
		AppointmentStatusCancelada:
		return true
	default:
		return false
	}
}

// NormalizeUpdatableStatus case-normalizes a caller-supplied status and
// checks it against the set the update operations accept. "confirmada" is a
// legal stored value but is NOT accepted here; the asymmetry is existing
// business behavior and is kept as-is.
func NormalizeUpdatableStatus(status string) (AppointmentStatus, bool) {
	s := AppointmentStatus(strings.ToLower(status))
	switch s {
	case AppointmentStatusPendiente,
		AppointmentStatusCancelada,
		AppointmentStatusCompletada:
		return s, true
	default:
		return "", false
	}
}

// Appointment is a scheduled visit linking Client, Patient, ServiceType and
// Veterinarian. Notes holds the serialized visit-notes document, or NULL.
type Appointment struct {
	ID             int64             `json:"id" db:"id"`
	ClientID       int64             `json:"client_id" db:"client_id"`
	PatientID      int64             `json:"patient_id" db:"patient_id"`
	ServiceTypeID  int64             `json:"service_type_id" db:"service_type_id"`
	VeterinarianID int64             `json:"veterinarian_id" db:"veterinarian_id"`
	Date           time.Time         `json:"date" db:"date"`
	Time           string            `json:"time" db:"time"` // HH:MM, stored as TIME
	Status         AppointmentStatus `json:"status" db:"status"`
	Notes          *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}
