package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gatoco_backend/internal/models"
)

// PatientRepository defines the interface for pet record persistence.
type PatientRepository interface {
	Save(executor SQLExecutor, patient *models.Patient) (int64, error)
	FindByID(patientID int64) (*models.Patient, error)
	FindByClientID(clientID int64) ([]models.Patient, error)
	Update(executor SQLExecutor, patient *models.Patient) error
	Delete(executor SQLExecutor, patientID int64) (bool, error)
}

type patientRepository struct {
	db *sql.DB
}

// NewPatientRepository creates a new instance of PatientRepository.
func NewPatientRepository(db *sql.DB) PatientRepository {
	return &patientRepository{db: db}
}

const patientColumns = `id, client_id, name, species, breed, birth_date, gender, weight, photo_url, created_at, updated_at`

func (r *patientRepository) Save(executor SQLExecutor, patient *models.Patient) (int64, error) {
	query := `INSERT INTO patients (client_id, name, species, breed, birth_date, gender, weight, photo_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`

	currentTime := time.Now()

	var patientID int64
	err := executor.QueryRow(
		query,
		patient.ClientID,
		patient.Name,
		patient.Species,
		patient.Breed,
		patient.BirthDate,
		patient.Gender,
		patient.Weight,
		patient.PhotoURL,
		currentTime,
		currentTime,
	).Scan(&patientID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating patient: %v", ErrDatabaseError, err)
	}
	return patientID, nil
}

func (r *patientRepository) FindByID(patientID int64) (*models.Patient, error) {
	patient := &models.Patient{}
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	err := r.db.QueryRow(query, patientID).Scan(
		&patient.ID, &patient.ClientID, &patient.Name, &patient.Species,
		&patient.Breed, &patient.BirthDate, &patient.Gender, &patient.Weight,
		&patient.PhotoURL, &patient.CreatedAt, &patient.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding patient by ID %d: %v", ErrDatabaseError, patientID, err)
	}
	return patient, nil
}

func (r *patientRepository) FindByClientID(clientID int64) ([]models.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE client_id = $1 ORDER BY name`

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing patients for client %d: %v", ErrDatabaseError, clientID, err)
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		var p models.Patient
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.Name, &p.Species,
			&p.Breed, &p.BirthDate, &p.Gender, &p.Weight,
			&p.PhotoURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning patient: %v", ErrDatabaseError, err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating patients: %v", ErrDatabaseError, err)
	}
	return patients, nil
}

func (r *patientRepository) Update(executor SQLExecutor, patient *models.Patient) error {
	query := `UPDATE patients
	          SET name = $1, species = $2, breed = $3, birth_date = $4, gender = $5,
	              weight = $6, photo_url = $7, updated_at = $8
	          WHERE id = $9`

	result, err := executor.Exec(
		query,
		patient.Name,
		patient.Species,
		patient.Breed,
		patient.BirthDate,
		patient.Gender,
		patient.Weight,
		patient.PhotoURL,
		time.Now(),
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating patient %d: %v", ErrDatabaseError, patient.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updating patient %d: %v", ErrDatabaseError, patient.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a patient row and reports whether a row was removed.
func (r *patientRepository) Delete(executor SQLExecutor, patientID int64) (bool, error) {
	result, err := executor.Exec(`DELETE FROM patients WHERE id = $1`, patientID)
	if err != nil {
		return false, fmt.Errorf("%w: deleting patient %d: %v", ErrDatabaseError, patientID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: deleting patient %d: %v", ErrDatabaseError, patientID, err)
	}
	return affected > 0, nil
}
