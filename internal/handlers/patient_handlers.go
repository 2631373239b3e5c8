package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"gatoco_backend/internal/services"
	"gatoco_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxPhotoBytes caps pet photo uploads at 5 MiB.
const maxPhotoBytes = 5 << 20

// PatientHandler holds the pet record service.
type PatientHandler struct {
	patientService services.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(ps services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: ps}
}

// patientRequest is the wire shape for create and update. FechaNacimiento
// uses YYYY-MM-DD.
type patientRequest struct {
	DuenoID         int64    `json:"duenoId"`
	Nombre          string   `json:"nombre" binding:"required"`
	Especie         string   `json:"especie" binding:"required"`
	Raza            *string  `json:"raza"`
	FechaNacimiento *string  `json:"fechaNacimiento"`
	Sexo            *string  `json:"sexo"`
	Peso            *float64 `json:"peso"`
}

func parseBirthDate(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*raw))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "fechaNacimiento debe tener el formato YYYY-MM-DD", *raw))
		return nil, false
	}
	return &parsed, true
}

// CreatePatient handles POST /mascotas.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePatient: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if req.DuenoID <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "duenoId es obligatorio", ""))
		return
	}
	birthDate, ok := parseBirthDate(c, req.FechaNacimiento)
	if !ok {
		return
	}

	patient, err := h.patientService.Create(services.CreatePatientInput{
		ClientID:  req.DuenoID,
		Name:      req.Nombre,
		Species:   req.Especie,
		Breed:     req.Raza,
		BirthDate: birthDate,
		Gender:    req.Sexo,
		Weight:    req.Peso,
	})
	if err != nil {
		respondServiceError(c, err, "CreatePatient")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": patient})
}

// GetPatient handles GET /mascotas/:id.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	patient, err := h.patientService.GetByID(patientID)
	if err != nil {
		respondServiceError(c, err, "GetPatient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": patient})
}

// GetPatientsByClient handles GET /mascotas/cliente/:clienteId.
func (h *PatientHandler) GetPatientsByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clienteId")
	if !ok {
		return
	}
	patients, err := h.patientService.GetByClientID(clientID)
	if err != nil {
		respondServiceError(c, err, "GetPatientsByClient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": patients})
}

// UpdatePatient handles PUT /mascotas/:id. The payload replaces the record;
// the stored photo survives unless the upload endpoints change it.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePatient: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	birthDate, ok := parseBirthDate(c, req.FechaNacimiento)
	if !ok {
		return
	}

	patient, err := h.patientService.Update(patientID, services.UpdatePatientInput{
		Name:      req.Nombre,
		Species:   req.Especie,
		Breed:     req.Raza,
		BirthDate: birthDate,
		Gender:    req.Sexo,
		Weight:    req.Peso,
	})
	if err != nil {
		respondServiceError(c, err, "UpdatePatient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": patient})
}

// DeletePatient handles DELETE /mascotas/:id.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.patientService.Delete(patientID); err != nil {
		respondServiceError(c, err, "DeletePatient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Mascota eliminada correctamente"})
}

// UploadPhoto handles POST /mascotas/:id/foto with a multipart "foto" field.
func (h *PatientHandler) UploadPhoto(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Se requiere un archivo en el campo 'foto'", err.Error()))
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "La imagen no puede superar los 5 MB", ""))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "UploadPhoto: failed to open upload for patient "+utils.Int64ToStr(patientID))
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "No se pudo leer la imagen", ""))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		utils.LogError(err, "UploadPhoto: failed to read upload for patient "+utils.Int64ToStr(patientID))
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "No se pudo leer la imagen", ""))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "El archivo debe ser una imagen", contentType))
		return
	}

	patient, err := h.patientService.AttachPhoto(patientID, data, contentType)
	if err != nil {
		respondServiceError(c, err, "UploadPhoto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": patient})
}

// DeletePhoto handles DELETE /mascotas/:id/foto.
func (h *PatientHandler) DeletePhoto(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	patient, err := h.patientService.RemovePhoto(patientID)
	if err != nil {
		respondServiceError(c, err, "DeletePhoto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": patient})
}
