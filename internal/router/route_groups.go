package router

import (
	"gatoco_backend/internal/handlers"
	"gatoco_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes. Logout requires a valid
// token; register and login obviously do not.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/clients/register", authHandler.Register)
		authRoutes.POST("/clients/login", authHandler.Login)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("/logout", authHandler.Logout)
		}
	}
}

// SetupCatalogRoutes exposes the public read-only catalogs backing the
// booking form: the staff list and the offered services.
func SetupCatalogRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler, serviceTypeHandler *handlers.ServiceTypeHandler) {
	apiGroup.GET("/veterinarios", authHandler.ListVeterinarians)
	apiGroup.GET("/servicios", serviceTypeHandler.ListServiceTypes)
}

// SetupPatientRoutes sets up the pet record routes.
func SetupPatientRoutes(authenticatedGroup *gin.RouterGroup, patientHandler *handlers.PatientHandler) {
	patientRoutes := authenticatedGroup.Group("/mascotas")
	{
		patientRoutes.POST("", patientHandler.CreatePatient)
		patientRoutes.GET("/:id", patientHandler.GetPatient)
		patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
		patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
		patientRoutes.POST("/:id/foto", patientHandler.UploadPhoto)
		patientRoutes.DELETE("/:id/foto", patientHandler.DeletePhoto)
	}
}

// SetupAppointmentRoutes sets up the appointment routes. The clinical update
// is restricted to veterinarians; a client changes only the status (e.g. to
// cancel their own booking).
func SetupAppointmentRoutes(authenticatedGroup *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler) {
	appointmentRoutes := authenticatedGroup.Group("/citas")
	{
		appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
		appointmentRoutes.PUT("/:id", middleware.RequireVeterinarian(), appointmentHandler.UpdateAppointment)
		appointmentRoutes.PUT("/:id/estado", appointmentHandler.UpdateAppointmentStatus)
	}
	authenticatedGroup.GET("/veterinarios/:veterinarioId/citas", appointmentHandler.GetAppointmentsByVeterinarian)
}

// SetupClientScopedRoutes sets up the per-client listings.
func SetupClientScopedRoutes(authenticatedGroup *gin.RouterGroup, patientHandler *handlers.PatientHandler, appointmentHandler *handlers.AppointmentHandler) {
	clientRoutes := authenticatedGroup.Group("/clientes/:clienteId")
	{
		clientRoutes.GET("/mascotas", patientHandler.GetPatientsByClient)
		clientRoutes.GET("/citas", appointmentHandler.GetAppointmentsByClient)
	}
}
