package services

import (
	"fmt"

	"gatoco_backend/internal/models"
	"gatoco_backend/internal/repositories"
	"gatoco_backend/pkg/utils"
)

// ServiceTypeService exposes the read-only service catalog.
type ServiceTypeService interface {
	GetAll() ([]models.ServiceType, error)
}

type serviceTypeService struct {
	serviceTypeRepo repositories.ServiceTypeRepository
}

// NewServiceTypeService creates a new instance of ServiceTypeService.
func NewServiceTypeService(serviceTypeRepo repositories.ServiceTypeRepository) ServiceTypeService {
	return &serviceTypeService{serviceTypeRepo: serviceTypeRepo}
}

func (s *serviceTypeService) GetAll() ([]models.ServiceType, error) {
	serviceTypes, err := s.serviceTypeRepo.FindAll()
	if err != nil {
		utils.LogError(err, "GetAllServiceTypes: listing failed")
		return nil, fmt.Errorf("%w: no se pudieron obtener los servicios", ErrStorage)
	}
	return serviceTypes, nil
}
