package middleware

import (
	"net/http"
	"strings"

	"gatoco_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Se requiere el encabezado Authorization", ""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Formato de autorizacion invalido. Use Bearer <token>", ""))
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token invalido o expirado", err.Error()))
			return
		}

		// Set user information in the context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("isVeterinarian", claims.IsVeterinarian)

		c.Next()
	}
}

// RequireVeterinarian gates clinical endpoints behind the veterinarian role.
// AuthMiddleware must run first.
func RequireVeterinarian() gin.HandlerFunc {
	return func(c *gin.Context) {
		isVeterinarian, exists := c.Get("isVeterinarian")
		if !exists {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Rol de usuario no encontrado en el token", ""))
			return
		}
		if ok, _ := isVeterinarian.(bool); !ok {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Solo un veterinario puede realizar esta accion", ""))
			return
		}
		c.Next()
	}
}
