package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gatoco_backend/internal/database"
	"gatoco_backend/internal/models"
	"gatoco_backend/internal/repositories"
	"gatoco_backend/internal/storage"
	"gatoco_backend/pkg/utils"
)

// CreatePatientInput carries the fields for a new pet record.
type CreatePatientInput struct {
	ClientID  int64
	Name      string
	Species   string
	Breed     *string
	BirthDate *time.Time
	Gender    *string
	Weight    *float64
}

// UpdatePatientInput carries the full replacement fields of an update.
// PhotoURL nil keeps the stored photo.
type UpdatePatientInput struct {
	Name      string
	Species   string
	Breed     *string
	BirthDate *time.Time
	Gender    *string
	Weight    *float64
	PhotoURL  *string
}

// PatientService groups the pet record use cases.
type PatientService interface {
	Create(input CreatePatientInput) (*models.Patient, error)
	GetByID(patientID int64) (*models.Patient, error)
	GetByClientID(clientID int64) ([]models.Patient, error)
	Update(patientID int64, input UpdatePatientInput) (*models.Patient, error)
	Delete(patientID int64) error
	AttachPhoto(patientID int64, data []byte, contentType string) (*models.Patient, error)
	RemovePhoto(patientID int64) (*models.Patient, error)
}

type patientService struct {
	patientRepo     repositories.PatientRepository
	clientRepo      repositories.ClientRepository
	appointmentRepo repositories.AppointmentRepository
	photos          storage.PhotoStore
	tx              database.TxManager
}

// NewPatientService creates a new instance of PatientService.
func NewPatientService(
	patientRepo repositories.PatientRepository,
	clientRepo repositories.ClientRepository,
	appointmentRepo repositories.AppointmentRepository,
	photos storage.PhotoStore,
	tx database.TxManager,
) PatientService {
	return &patientService{
		patientRepo:     patientRepo,
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		photos:          photos,
		tx:              tx,
	}
}

// Create validates the required fields, checks the owner exists and persists
// a new pet record.
func (s *patientService) Create(input CreatePatientInput) (*models.Patient, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la mascota no puede estar vacio", ErrValidation)
	}
	if strings.TrimSpace(input.Species) == "" {
		return nil, fmt.Errorf("%w: la especie de la mascota no puede estar vacia", ErrValidation)
	}

	if _, err := s.clientRepo.FindByID(input.ClientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: el cliente no existe", ErrNotFound)
		}
		utils.LogError(err, "CreatePatient: owner check failed")
		return nil, fmt.Errorf("%w: no se pudo registrar la mascota", ErrStorage)
	}

	patient := &models.Patient{
		ClientID:  input.ClientID,
		Name:      strings.TrimSpace(input.Name),
		Species:   strings.TrimSpace(input.Species),
		Breed:     utils.TrimmedOrNil(input.Breed),
		BirthDate: input.BirthDate,
		Gender:    utils.TrimmedOrNil(input.Gender),
		Weight:    input.Weight,
	}

	err := s.tx.InTransaction(func(executor repositories.SQLExecutor) error {
		patientID, err := s.patientRepo.Save(executor, patient)
		if err != nil {
			utils.LogError(err, "CreatePatient: save failed")
			return fmt.Errorf("%w: no se pudo registrar la mascota", ErrStorage)
		}
		patient.ID = patientID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// GetByID loads a single pet record.
func (s *patientService) GetByID(patientID int64) (*models.Patient, error) {
	return s.findExisting(patientID)
}

// GetByClientID lists a client's pets.
func (s *patientService) GetByClientID(clientID int64) ([]models.Patient, error) {
	patients, err := s.patientRepo.FindByClientID(clientID)
	if err != nil {
		utils.LogError(err, "GetPatientsByClient: listing failed")
		return nil, fmt.Errorf("%w: no se pudieron obtener las mascotas", ErrStorage)
	}
	return patients, nil
}

// Update replaces the pet's fields. A nil PhotoURL keeps the stored photo.
func (s *patientService) Update(patientID int64, input UpdatePatientInput) (*models.Patient, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la mascota no puede estar vacio", ErrValidation)
	}
	if strings.TrimSpace(input.Species) == "" {
		return nil, fmt.Errorf("%w: la especie de la mascota no puede estar vacia", ErrValidation)
	}

	patient, err := s.findExisting(patientID)
	if err != nil {
		return nil, err
	}

	patient.Name = strings.TrimSpace(input.Name)
	patient.Species = strings.TrimSpace(input.Species)
	patient.Breed = utils.TrimmedOrNil(input.Breed)
	patient.BirthDate = input.BirthDate
	patient.Gender = utils.TrimmedOrNil(input.Gender)
	patient.Weight = input.Weight
	if input.PhotoURL != nil {
		patient.PhotoURL = input.PhotoURL
	}

	if err := s.persist(patient, "UpdatePatient"); err != nil {
		return nil, err
	}
	patient.UpdatedAt = time.Now()
	return patient, nil
}

// Delete removes a pet record. Deletion is blocked by policy while any
// appointment still references the patient.
func (s *patientService) Delete(patientID int64) error {
	patient, err := s.findExisting(patientID)
	if err != nil {
		return err
	}

	appointments, err := s.appointmentRepo.FindByPatientID(patientID)
	if err != nil {
		utils.LogError(err, "DeletePatient: appointment check failed")
		return fmt.Errorf("%w: no se pudo eliminar la mascota", ErrStorage)
	}
	if len(appointments) > 0 {
		return fmt.Errorf("%w: no se puede eliminar la mascota porque tiene %d cita(s) asociada(s). Por favor, elimine o cancele las citas primero",
			ErrConflict, len(appointments))
	}

	return s.tx.InTransaction(func(executor repositories.SQLExecutor) error {
		deleted, err := s.patientRepo.Delete(executor, patientID)
		if err != nil {
			utils.LogError(err, "DeletePatient: delete failed")
			return fmt.Errorf("%w: no se pudo eliminar la mascota", ErrStorage)
		}
		if !deleted {
			return fmt.Errorf("%w: la mascota no existe", ErrNotFound)
		}
		if patient.PhotoURL != nil {
			if err := s.photos.Delete(*patient.PhotoURL); err != nil {
				// The record is gone; an orphaned file is only worth a log line.
				utils.LogError(err, "DeletePatient: photo cleanup failed")
			}
		}
		return nil
	})
}

// AttachPhoto stores the uploaded image, replaces any previous one and
// persists the new URL.
func (s *patientService) AttachPhoto(patientID int64, data []byte, contentType string) (*models.Patient, error) {
	patient, err := s.findExisting(patientID)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.photos.Save(data, contentType)
	if err != nil {
		utils.LogError(err, "AttachPhoto: store failed")
		return nil, fmt.Errorf("%w: no se pudo subir la imagen", ErrStorage)
	}

	previous := patient.PhotoURL
	patient.PhotoURL = &photoURL
	if err := s.persist(patient, "AttachPhoto"); err != nil {
		return nil, err
	}

	if previous != nil {
		if err := s.photos.Delete(*previous); err != nil {
			utils.LogError(err, "AttachPhoto: previous photo cleanup failed")
		}
	}
	patient.UpdatedAt = time.Now()
	return patient, nil
}

// RemovePhoto deletes the stored image and clears the URL.
func (s *patientService) RemovePhoto(patientID int64) (*models.Patient, error) {
	patient, err := s.findExisting(patientID)
	if err != nil {
		return nil, err
	}
	if patient.PhotoURL == nil {
		return patient, nil
	}

	photoURL := *patient.PhotoURL
	patient.PhotoURL = nil
	if err := s.persist(patient, "RemovePhoto"); err != nil {
		return nil, err
	}

	if err := s.photos.Delete(photoURL); err != nil {
		utils.LogError(err, "RemovePhoto: photo cleanup failed")
	}
	patient.UpdatedAt = time.Now()
	return patient, nil
}

func (s *patientService) persist(patient *models.Patient, op string) error {
	return s.tx.InTransaction(func(executor repositories.SQLExecutor) error {
		if err := s.patientRepo.Update(executor, patient); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: la mascota no existe", ErrNotFound)
			}
			utils.LogError(err, op+": update failed")
			return fmt.Errorf("%w: no se pudo actualizar la mascota", ErrStorage)
		}
		return nil
	})
}

func (s *patientService) findExisting(patientID int64) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByID(patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: la mascota no existe", ErrNotFound)
		}
		utils.LogError(err, "Patient lookup failed")
		return nil, fmt.Errorf("%w: no se pudo obtener la mascota", ErrStorage)
	}
	return patient, nil
}
