package handlers

import (
	"net/http"

	"gatoco_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ServiceTypeHandler exposes the read-only service catalog.
type ServiceTypeHandler struct {
	serviceTypeService services.ServiceTypeService
}

// NewServiceTypeHandler creates a new ServiceTypeHandler.
func NewServiceTypeHandler(sts services.ServiceTypeService) *ServiceTypeHandler {
	return &ServiceTypeHandler{serviceTypeService: sts}
}

// ListServiceTypes handles GET /servicios.
func (h *ServiceTypeHandler) ListServiceTypes(c *gin.Context) {
	serviceTypes, err := h.serviceTypeService.GetAll()
	if err != nil {
		respondServiceError(c, err, "ListServiceTypes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": serviceTypes})
}
