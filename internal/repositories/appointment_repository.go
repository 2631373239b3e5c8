package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gatoco_backend/internal/models"
)

// AppointmentRepository defines the interface for appointment persistence.
type AppointmentRepository interface {
	Save(executor SQLExecutor, appointment *models.Appointment) (int64, error)
	FindByID(appointmentID int64) (*models.Appointment, error)
	FindByClientID(clientID int64) ([]models.Appointment, error)
	FindByVeterinarianID(veterinarianID int64) ([]models.Appointment, error)
	FindByPatientID(patientID int64) ([]models.Appointment, error)
	UpdateStatus(executor SQLExecutor, appointmentID int64, status models.AppointmentStatus) error
	UpdateNotesAndStatus(executor SQLExecutor, appointmentID int64, notes *string, status models.AppointmentStatus) error
}

type appointmentRepository struct {
	db *sql.DB
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `id, client_id, patient_id, service_type_id, veterinarian_id,
	date, time, status, notes, created_at, updated_at`

func (r *appointmentRepository) Save(executor SQLExecutor, appointment *models.Appointment) (int64, error) {
	query := `INSERT INTO appointments (client_id, patient_id, service_type_id, veterinarian_id,
	                                    date, time, status, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`

	currentTime := time.Now()

	var appointmentID int64
	err := executor.QueryRow(
		query,
		appointment.ClientID,
		appointment.PatientID,
		appointment.ServiceTypeID,
		appointment.VeterinarianID,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.Notes,
		currentTime,
		currentTime,
	).Scan(&appointmentID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating appointment: %v", ErrDatabaseError, err)
	}
	return appointmentID, nil
}

func (r *appointmentRepository) FindByID(appointmentID int64) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appointment, err := scanAppointment(r.db.QueryRow(query, appointmentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding appointment by ID %d: %v", ErrDatabaseError, appointmentID, err)
	}
	return appointment, nil
}

func (r *appointmentRepository) FindByClientID(clientID int64) ([]models.Appointment, error) {
	return r.findMany(`SELECT `+appointmentColumns+` FROM appointments WHERE client_id = $1 ORDER BY date, time`, clientID)
}

func (r *appointmentRepository) FindByVeterinarianID(veterinarianID int64) ([]models.Appointment, error) {
	return r.findMany(`SELECT `+appointmentColumns+` FROM appointments WHERE veterinarian_id = $1 ORDER BY date, time`, veterinarianID)
}

func (r *appointmentRepository) FindByPatientID(patientID int64) ([]models.Appointment, error) {
	return r.findMany(`SELECT `+appointmentColumns+` FROM appointments WHERE patient_id = $1 ORDER BY date, time`, patientID)
}

// UpdateStatus persists only the status change plus the updated timestamp.
func (r *appointmentRepository) UpdateStatus(executor SQLExecutor, appointmentID int64, status models.AppointmentStatus) error {
	return r.exec(executor,
		`UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3`,
		appointmentID, status, time.Now(), appointmentID)
}

// UpdateNotesAndStatus persists the merged notes document and the resolved
// status in a single write.
func (r *appointmentRepository) UpdateNotesAndStatus(executor SQLExecutor, appointmentID int64, notes *string, status models.AppointmentStatus) error {
	return r.exec(executor,
		`UPDATE appointments SET notes = $1, status = $2, updated_at = $3 WHERE id = $4`,
		appointmentID, notes, status, time.Now(), appointmentID)
}

func (r *appointmentRepository) exec(executor SQLExecutor, query string, appointmentID int64, args ...interface{}) error {
	result, err := executor.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%w: updating appointment %d: %v", ErrDatabaseError, appointmentID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updating appointment %d: %v", ErrDatabaseError, appointmentID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) findMany(query string, arg int64) ([]models.Appointment, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: listing appointments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning appointment: %v", ErrDatabaseError, err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating appointments: %v", ErrDatabaseError, err)
	}
	return appointments, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	appointment := &models.Appointment{}
	err := row.Scan(
		&appointment.ID, &appointment.ClientID, &appointment.PatientID,
		&appointment.ServiceTypeID, &appointment.VeterinarianID,
		&appointment.Date, &appointment.Time, &appointment.Status,
		&appointment.Notes, &appointment.CreatedAt, &appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}
