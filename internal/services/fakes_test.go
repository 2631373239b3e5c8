package services

import (
	"fmt"

	"gatoco_backend/internal/models"
	"gatoco_backend/internal/repositories"
)

// -------------------------
// In-memory collaborators
// -------------------------

// passTx satisfies database.TxManager without a database: the callback runs
// directly with a nil executor, which the fake repositories ignore.
type passTx struct{}

func (passTx) InTransaction(fn func(executor repositories.SQLExecutor) error) error {
	return fn(nil)
}

type fakeUserRepo struct {
	byID    map[int64]models.User
	byEmail map[string]int64
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[int64]models.User{}, byEmail: map[string]int64{}, nextID: 1}
}

func (r *fakeUserRepo) CreateUser(_ repositories.SQLExecutor, user *models.User) (int64, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return 0, fmt.Errorf("%w: users_email_key", repositories.ErrDuplicateKey)
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.byID[id] = stored
	r.byEmail[user.Email] = id
	return id, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *fakeUserRepo) FindByID(userID int64) (*models.User, error) {
	user, ok := r.byID[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

type fakeClientRepo struct {
	byID   map[int64]models.Client
	nextID int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: map[int64]models.Client{}, nextID: 1}
}

func (r *fakeClientRepo) Save(_ repositories.SQLExecutor, client *models.Client) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *client
	stored.ID = id
	r.byID[id] = stored
	return id, nil
}

func (r *fakeClientRepo) FindByID(clientID int64) (*models.Client, error) {
	client, ok := r.byID[clientID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &client, nil
}

func (r *fakeClientRepo) FindByUserID(userID int64) (*models.Client, error) {
	for _, client := range r.byID {
		if client.UserID == userID {
			c := client
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeVeterinarianRepo struct {
	byID   map[int64]models.Veterinarian
	nextID int64
}

func newFakeVeterinarianRepo() *fakeVeterinarianRepo {
	return &fakeVeterinarianRepo{byID: map[int64]models.Veterinarian{}, nextID: 1}
}

func (r *fakeVeterinarianRepo) Save(_ repositories.SQLExecutor, veterinarian *models.Veterinarian) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *veterinarian
	stored.ID = id
	r.byID[id] = stored
	return id, nil
}

func (r *fakeVeterinarianRepo) FindByID(veterinarianID int64) (*models.Veterinarian, error) {
	veterinarian, ok := r.byID[veterinarianID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &veterinarian, nil
}

func (r *fakeVeterinarianRepo) FindByUserID(userID int64) (*models.Veterinarian, error) {
	for _, veterinarian := range r.byID {
		if veterinarian.UserID == userID {
			v := veterinarian
			return &v, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeVeterinarianRepo) FindAll() ([]models.Veterinarian, error) {
	out := []models.Veterinarian{}
	for _, v := range r.byID {
		out = append(out, v)
	}
	return out, nil
}

type fakePatientRepo struct {
	byID   map[int64]models.Patient
	nextID int64
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{byID: map[int64]models.Patient{}, nextID: 1}
}

func (r *fakePatientRepo) Save(_ repositories.SQLExecutor, patient *models.Patient) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *patient
	stored.ID = id
	r.byID[id] = stored
	return id, nil
}

func (r *fakePatientRepo) FindByID(patientID int64) (*models.Patient, error) {
	patient, ok := r.byID[patientID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &patient, nil
}

func (r *fakePatientRepo) FindByClientID(clientID int64) ([]models.Patient, error) {
	out := []models.Patient{}
	for _, p := range r.byID {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Update(_ repositories.SQLExecutor, patient *models.Patient) error {
	if _, ok := r.byID[patient.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.byID[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Delete(_ repositories.SQLExecutor, patientID int64) (bool, error) {
	if _, ok := r.byID[patientID]; !ok {
		return false, nil
	}
	delete(r.byID, patientID)
	return true, nil
}

type fakeServiceTypeRepo struct {
	byID map[int64]models.ServiceType
}

func newFakeServiceTypeRepo() *fakeServiceTypeRepo {
	return &fakeServiceTypeRepo{byID: map[int64]models.ServiceType{}}
}

func (r *fakeServiceTypeRepo) FindAll() ([]models.ServiceType, error) {
	out := []models.ServiceType{}
	for _, st := range r.byID {
		out = append(out, st)
	}
	return out, nil
}

func (r *fakeServiceTypeRepo) FindByID(serviceTypeID int64) (*models.ServiceType, error) {
	serviceType, ok := r.byID[serviceTypeID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &serviceType, nil
}

type fakeAppointmentRepo struct {
	byID   map[int64]models.Appointment
	nextID int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: map[int64]models.Appointment{}, nextID: 1}
}

func (r *fakeAppointmentRepo) Save(_ repositories.SQLExecutor, appointment *models.Appointment) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *appointment
	stored.ID = id
	r.byID[id] = stored
	return id, nil
}

func (r *fakeAppointmentRepo) FindByID(appointmentID int64) (*models.Appointment, error) {
	appointment, ok := r.byID[appointmentID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &appointment, nil
}

func (r *fakeAppointmentRepo) FindByClientID(clientID int64) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, a := range r.byID {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByVeterinarianID(veterinarianID int64) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, a := range r.byID {
		if a.VeterinarianID == veterinarianID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(patientID int64) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, a := range r.byID {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ repositories.SQLExecutor, appointmentID int64, status models.AppointmentStatus) error {
	appointment, ok := r.byID[appointmentID]
	if !ok {
		return repositories.ErrNotFound
	}
	appointment.Status = status
	r.byID[appointmentID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) UpdateNotesAndStatus(_ repositories.SQLExecutor, appointmentID int64, notes *string, status models.AppointmentStatus) error {
	appointment, ok := r.byID[appointmentID]
	if !ok {
		return repositories.ErrNotFound
	}
	appointment.Notes = notes
	appointment.Status = status
	r.byID[appointmentID] = appointment
	return nil
}

type fakePhotoStore struct {
	saved   map[string][]byte
	deleted []string
	nextID  int
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{saved: map[string][]byte{}}
}

func (s *fakePhotoStore) Save(data []byte, contentType string) (string, error) {
	s.nextID++
	url := fmt.Sprintf("/uploads/pets/photo-%d.jpg", s.nextID)
	s.saved[url] = data
	return url, nil
}

func (s *fakePhotoStore) Delete(photoURL string) error {
	s.deleted = append(s.deleted, photoURL)
	delete(s.saved, photoURL)
	return nil
}
