package handlers

import (
	"net/http"
	"time"

	"gatoco_backend/internal/models"
	"gatoco_backend/internal/services"
	"gatoco_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler holds the appointment service.
type AppointmentHandler struct {
	appointmentService services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(as services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: as}
}

type createAppointmentRequest struct {
	ClienteID     int64   `json:"clienteId" binding:"required"`
	MascotaID     int64   `json:"mascotaId" binding:"required"`
	ServicioID    int64   `json:"servicioId" binding:"required"`
	VeterinarioID int64   `json:"veterinarioId" binding:"required"`
	Fecha         string  `json:"fecha" binding:"required"`
	Hora          string  `json:"hora" binding:"required"`
	Notas         *string `json:"notas"`
}

// petSnapshotRequest mirrors the informacionMascota document keys.
type petSnapshotRequest struct {
	Nombre          string  `json:"nombre" binding:"required"`
	Especie         string  `json:"especie" binding:"required"`
	Raza            *string `json:"raza"`
	FechaNacimiento *string `json:"fechaNacimiento"`
	Sexo            *string `json:"sexo"`
	Edad            *int    `json:"edad"`
}

type updateAppointmentRequest struct {
	Diagnostico        *string             `json:"diagnostico"`
	Tratamiento        *string             `json:"tratamiento"`
	Estado             *string             `json:"estado"`
	InformacionMascota *petSnapshotRequest `json:"informacionMascota"`
}

// CreateAppointment handles POST /citas.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateAppointment: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "fecha debe tener el formato YYYY-MM-DD", req.Fecha))
		return
	}
	if _, err := time.Parse("15:04", req.Hora); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "hora debe tener el formato HH:MM", req.Hora))
		return
	}

	appointment, err := h.appointmentService.Create(services.CreateAppointmentInput{
		ClientID:       req.ClienteID,
		PatientID:      req.MascotaID,
		ServiceTypeID:  req.ServicioID,
		VeterinarianID: req.VeterinarioID,
		Date:           date,
		Time:           req.Hora,
		Notes:          utils.TrimmedOrNil(req.Notas),
	})
	if err != nil {
		respondServiceError(c, err, "CreateAppointment")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": appointment})
}

// GetAppointmentsByClient handles GET /citas/cliente/:clienteId.
func (h *AppointmentHandler) GetAppointmentsByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clienteId")
	if !ok {
		return
	}
	appointments, err := h.appointmentService.GetByClientID(clientID)
	if err != nil {
		respondServiceError(c, err, "GetAppointmentsByClient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": appointments})
}

// GetAppointmentsByVeterinarian handles GET /citas/veterinario/:veterinarioId.
func (h *AppointmentHandler) GetAppointmentsByVeterinarian(c *gin.Context) {
	veterinarianID, ok := parseIDParam(c, "veterinarioId")
	if !ok {
		return
	}
	appointments, err := h.appointmentService.GetByVeterinarianID(veterinarianID)
	if err != nil {
		respondServiceError(c, err, "GetAppointmentsByVeterinarian")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": appointments})
}

// UpdateAppointmentStatus handles PUT /citas/:id/estado?estado=X.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	estado := c.Query("estado")
	if estado == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "El parametro 'estado' es obligatorio", ""))
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(appointmentID, estado)
	if err != nil {
		respondServiceError(c, err, "UpdateAppointmentStatus")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": appointment})
}

// UpdateAppointment handles PUT /citas/:id, merging clinical notes and
// optionally changing the status.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateAppointment: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	input := services.UpdateAppointmentInput{
		Diagnosis: req.Diagnostico,
		Treatment: req.Tratamiento,
		Status:    req.Estado,
	}
	if req.InformacionMascota != nil {
		input.PetSnapshot = &models.PetSnapshot{
			Name:      req.InformacionMascota.Nombre,
			Species:   req.InformacionMascota.Especie,
			Breed:     req.InformacionMascota.Raza,
			BirthDate: req.InformacionMascota.FechaNacimiento,
			Gender:    req.InformacionMascota.Sexo,
			Age:       req.InformacionMascota.Edad,
		}
	}

	appointment, err := h.appointmentService.Update(appointmentID, input)
	if err != nil {
		respondServiceError(c, err, "UpdateAppointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": appointment})
}
