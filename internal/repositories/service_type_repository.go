package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"gatoco_backend/internal/models"
)

// ServiceTypeRepository defines read access to the service catalog.
type ServiceTypeRepository interface {
	FindAll() ([]models.ServiceType, error)
	FindByID(serviceTypeID int64) (*models.ServiceType, error)
}

type serviceTypeRepository struct {
	db *sql.DB
}

// NewServiceTypeRepository creates a new instance of ServiceTypeRepository.
func NewServiceTypeRepository(db *sql.DB) ServiceTypeRepository {
	return &serviceTypeRepository{db: db}
}

func (r *serviceTypeRepository) FindAll() ([]models.ServiceType, error) {
	rows, err := r.db.Query(`SELECT id, name FROM service_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: listing service types: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	serviceTypes := []models.ServiceType{}
	for rows.Next() {
		var st models.ServiceType
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning service type: %v", ErrDatabaseError, err)
		}
		serviceTypes = append(serviceTypes, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating service types: %v", ErrDatabaseError, err)
	}
	return serviceTypes, nil
}

func (r *serviceTypeRepository) FindByID(serviceTypeID int64) (*models.ServiceType, error) {
	serviceType := &models.ServiceType{}
	err := r.db.QueryRow(`SELECT id, name FROM service_types WHERE id = $1`, serviceTypeID).
		Scan(&serviceType.ID, &serviceType.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding service type %d: %v", ErrDatabaseError, serviceTypeID, err)
	}
	return serviceType, nil
}
