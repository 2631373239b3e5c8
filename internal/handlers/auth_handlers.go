package handlers

import (
	"net/http"

	"gatoco_backend/internal/models"
	"gatoco_backend/internal/services"
	"gatoco_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// accountResponse is the user object the frontend stores after register and
// login. Exactly one of ClienteID/VeterinarioID is set.
type accountResponse struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	FullName      string  `json:"fullName"`
	Phone         *string `json:"phone,omitempty"`
	ClienteID     *int64  `json:"clienteId,omitempty"`
	VeterinarioID *int64  `json:"veterinarioId,omitempty"`
}

func newAccountResponse(account *models.Account) accountResponse {
	resp := accountResponse{
		ID:       account.User.ID,
		Email:    account.User.Email,
		Role:     "cliente",
		FullName: account.FullName(),
		Phone:    account.Phone(),
	}
	if account.User.IsVeterinarian {
		resp.Role = "veterinario"
		resp.VeterinarioID = &account.Veterinarian.ID
	} else {
		resp.ClienteID = &account.Client.ID
	}
	return resp
}

// Register handles account registration and signs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Register: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	account, err := h.authService.Register(req)
	if err != nil {
		respondServiceError(c, err, "Register")
		return
	}

	token, err := utils.GenerateAccessToken(account.User.ID, account.User.Email, account.User.IsVeterinarian)
	if err != nil {
		utils.LogError(err, "Register: token generation failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Error interno del servidor", ""))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Usuario registrado correctamente",
		"user":    newAccountResponse(account),
		"token":   token,
	})
}

// Login handles credential checks and token issuance.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Login: failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	account, err := h.authService.Login(req)
	if err != nil {
		respondServiceError(c, err, "Login")
		return
	}

	token, err := utils.GenerateAccessToken(account.User.ID, account.User.Email, account.User.IsVeterinarian)
	if err != nil {
		utils.LogError(err, "Login: token generation failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Error interno del servidor", ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    newAccountResponse(account),
		"token":   token,
	})
}

// Logout acknowledges the logout. Tokens are stateless; the client discards
// its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sesion cerrada correctamente"})
}

// ListVeterinarians returns all staff profiles for the booking form.
func (h *AuthHandler) ListVeterinarians(c *gin.Context) {
	veterinarians, err := h.authService.ListVeterinarians()
	if err != nil {
		respondServiceError(c, err, "ListVeterinarians")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": veterinarians})
}
