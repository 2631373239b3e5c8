package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gatoco_backend/internal/services"
	"gatoco_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// serviceMessage strips the taxonomy sentinel prefix so only the Spanish
// detail reaches the caller.
func serviceMessage(err error, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
func respondServiceError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, serviceMessage(err, services.ErrValidation), ""))
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, serviceMessage(err, services.ErrNotFound), ""))
	case errors.Is(err, services.ErrConflict):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, serviceMessage(err, services.ErrConflict), ""))
	case errors.Is(err, services.ErrUnauthorized):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Credenciales invalidas", ""))
	default:
		utils.LogError(err, op+": unexpected service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Error interno del servidor", ""))
	}
}

// parseIDParam reads a positive int64 path parameter, responding 400 itself
// on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := utils.StrToInt64(c.Param(name))
	if err != nil || id <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Identificador invalido: "+name, c.Param(name)))
		return 0, false
	}
	return id, true
}
