package router

import (
	"database/sql"

	"gatoco_backend/internal/database"
	"gatoco_backend/internal/handlers"
	"gatoco_backend/internal/middleware"
	"gatoco_backend/internal/repositories"
	"gatoco_backend/internal/services"
	"gatoco_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, photos storage.PhotoStore) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	veterinarianRepo := repositories.NewVeterinarianRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	serviceTypeRepo := repositories.NewServiceTypeRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)

	txManager := database.NewTxManager(db)

	// Initialize Services
	authService := services.NewAuthService(userRepo, clientRepo, veterinarianRepo, txManager)
	patientService := services.NewPatientService(patientRepo, clientRepo, appointmentRepo, photos, txManager)
	serviceTypeService := services.NewServiceTypeService(serviceTypeRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, clientRepo, patientRepo, serviceTypeRepo, veterinarianRepo, txManager)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	patientHandler := handlers.NewPatientHandler(patientService)
	serviceTypeHandler := handlers.NewServiceTypeHandler(serviceTypeService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	apiV1 := engine.Group("/api/v1")

	// Registration, login and the public catalogs need no token.
	SetupAuthRoutes(apiV1, authHandler)
	SetupCatalogRoutes(apiV1, authHandler, serviceTypeHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupPatientRoutes(authenticated, patientHandler)
		SetupAppointmentRoutes(authenticated, appointmentHandler)
		SetupClientScopedRoutes(authenticated, patientHandler, appointmentHandler)
	}
}
