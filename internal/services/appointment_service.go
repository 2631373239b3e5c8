package services

import (
	"errors"
	"fmt"
	"time"

	"gatoco_backend/internal/database"
	"gatoco_backend/internal/models"
	"gatoco_backend/internal/repositories"
	"gatoco_backend/pkg/utils"
)

const errMsgInvalidStatus = "estado invalido. Los estados validos son: pendiente, cancelada, completada"

// CreateAppointmentInput carries the resolved identifiers and parsed
// date/time for a booking.
type CreateAppointmentInput struct {
	ClientID       int64
	PatientID      int64
	ServiceTypeID  int64
	VeterinarianID int64
	Date           time.Time
	Time           string
	Notes          *string
}

// UpdateAppointmentInput carries the optional clinical fields of a full
// update. Nil fields leave their notes keys untouched.
type UpdateAppointmentInput struct {
	Diagnosis   *string
	Treatment   *string
	PetSnapshot *models.PetSnapshot
	Status      *string
}

// AppointmentService groups the appointment use cases.
type AppointmentService interface {
	Create(input CreateAppointmentInput) (*models.Appointment, error)
	UpdateStatus(appointmentID int64, newStatus string) (*models.Appointment, error)
	Update(appointmentID int64, input UpdateAppointmentInput) (*models.Appointment, error)
	GetByClientID(clientID int64) ([]models.Appointment, error)
	GetByVeterinarianID(veterinarianID int64) ([]models.Appointment, error)
}

type appointmentService struct {
	appointmentRepo  repositories.AppointmentRepository
	clientRepo       repositories.ClientRepository
	patientRepo      repositories.PatientRepository
	serviceTypeRepo  repositories.ServiceTypeRepository
	veterinarianRepo repositories.VeterinarianRepository
	tx               database.TxManager
}

// NewAppointmentService creates a new instance of AppointmentService.
func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	clientRepo repositories.ClientRepository,
	patientRepo repositories.PatientRepository,
	serviceTypeRepo repositories.ServiceTypeRepository,
	veterinarianRepo repositories.VeterinarianRepository,
	tx database.TxManager,
) AppointmentService {
	return &appointmentService{
		appointmentRepo:  appointmentRepo,
		clientRepo:       clientRepo,
		patientRepo:      patientRepo,
		serviceTypeRepo:  serviceTypeRepo,
		veterinarianRepo: veterinarianRepo,
		tx:               tx,
	}
}

// Create checks that every referenced entity exists and persists a new
// appointment. The status is always pendiente no matter what the caller sent.
func (s *appointmentService) Create(input CreateAppointmentInput) (*models.Appointment, error) {
	if err := s.checkReferences(input); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		ClientID:       input.ClientID,
		PatientID:      input.PatientID,
		ServiceTypeID:  input.ServiceTypeID,
		VeterinarianID: input.VeterinarianID,
		Date:           input.Date,
		Time:           input.Time,
		Status:         models.AppointmentStatusPendiente,
		Notes:          input.Notes,
	}

	err := s.tx.InTransaction(func(executor repositories.SQLExecutor) error {
		appointmentID, err := s.appointmentRepo.Save(executor, appointment)
		if err != nil {
			utils.LogError(err, "CreateAppointment: save failed")
			return fmt.Errorf("%w: no se pudo crear la cita", ErrStorage)
		}
		appointment.ID = appointmentID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateStatus case-normalizes and validates the new status, then persists
// only the status change. No transition-graph rules apply beyond vocabulary
// membership; concurrent updates are last-write-wins.
func (s *appointmentService) UpdateStatus(appointmentID int64, newStatus string) (*models.Appointment, error) {
	appointment, err := s.findExisting(appointmentID)
	if err != nil {
		return nil, err
	}

	status, ok := models.NormalizeUpdatableStatus(newStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrValidation, errMsgInvalidStatus)
	}

	err = s.tx.InTransaction(func(executor repositories.SQLExecutor) error {
		if err := s.appointmentRepo.UpdateStatus(executor, appointmentID, status); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: la cita no existe", ErrNotFound)
			}
			utils.LogError(err, "UpdateAppointmentStatus: update failed")
			return fmt.Errorf("%w: no se pudo actualizar el estado de la cita", ErrStorage)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	appointment.Status = status
	appointment.UpdatedAt = time.Now()
	return appointment, nil
}

// Update merges the supplied clinical fields into the existing notes
// document and persists them together with the resolved status in a single
// write. An invalid status fails the whole operation before any persistence.
func (s *appointmentService) Update(appointmentID int64, input UpdateAppointmentInput) (*models.Appointment, error) {
	appointment, err := s.findExisting(appointmentID)
	if err != nil {
		return nil, err
	}

	status := appointment.Status
	if input.Status != nil {
		normalized, ok := models.NormalizeUpdatableStatus(*input.Status)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrValidation, errMsgInvalidStatus)
		}
		status = normalized
	}

	notes, err := models.MergeVisitNotes(appointment.Notes, input.Diagnosis, input.Treatment, input.PetSnapshot)
	if err != nil {
		utils.LogError(err, "UpdateAppointment: notes merge failed")
		return nil, fmt.Errorf("%w: no se pudo actualizar la cita", ErrStorage)
	}

	err = s.tx.InTransaction(func(executor repositories.SQLExecutor) error {
		if err := s.appointmentRepo.UpdateNotesAndStatus(executor, appointmentID, notes, status); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: la cita no existe", ErrNotFound)
			}
			utils.LogError(err, "UpdateAppointment: update failed")
			return fmt.Errorf("%w: no se pudo actualizar la cita", ErrStorage)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	appointment.Notes = notes
	appointment.Status = status
	appointment.UpdatedAt = time.Now()
	return appointment, nil
}

// GetByClientID lists a client's appointments.
func (s *appointmentService) GetByClientID(clientID int64) ([]models.Appointment, error) {
	appointments, err := s.appointmentRepo.FindByClientID(clientID)
	if err != nil {
		utils.LogError(err, "GetAppointmentsByClient: listing failed")
		return nil, fmt.Errorf("%w: no se pudieron obtener las citas", ErrStorage)
	}
	return appointments, nil
}

// GetByVeterinarianID lists a veterinarian's appointments.
func (s *appointmentService) GetByVeterinarianID(veterinarianID int64) ([]models.Appointment, error) {
	appointments, err := s.appointmentRepo.FindByVeterinarianID(veterinarianID)
	if err != nil {
		utils.LogError(err, "GetAppointmentsByVeterinarian: listing failed")
		return nil, fmt.Errorf("%w: no se pudieron obtener las citas", ErrStorage)
	}
	return appointments, nil
}

func (s *appointmentService) checkReferences(input CreateAppointmentInput) error {
	checks := []struct {
		lookup func() error
		msg    string
	}{
		{func() error { _, err := s.clientRepo.FindByID(input.ClientID); return err }, "el cliente no existe"},
		{func() error { _, err := s.patientRepo.FindByID(input.PatientID); return err }, "la mascota no existe"},
		{func() error { _, err := s.serviceTypeRepo.FindByID(input.ServiceTypeID); return err }, "el servicio no existe"},
		{func() error { _, err := s.veterinarianRepo.FindByID(input.VeterinarianID); return err }, "el veterinario no existe"},
	}
	for _, check := range checks {
		if err := check.lookup(); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, check.msg)
			}
			utils.LogError(err, "CreateAppointment: reference check failed")
			return fmt.Errorf("%w: no se pudo crear la cita", ErrStorage)
		}
	}
	return nil
}

func (s *appointmentService) findExisting(appointmentID int64) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: la cita no existe", ErrNotFound)
		}
		utils.LogError(err, "Appointment lookup failed")
		return nil, fmt.Errorf("%w: no se pudo obtener la cita", ErrStorage)
	}
	return appointment, nil
}
