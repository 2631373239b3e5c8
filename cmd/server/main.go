package main

import (
	"strings"

	"gatoco_backend/internal/config"
	"gatoco_backend/internal/database"
	"gatoco_backend/internal/router"
	"gatoco_backend/internal/storage"
	"gatoco_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	cfg := config.Load()
	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize Database
	db, err := database.InitDB(cfg.DSN())
	if err != nil {
		utils.LogError(err, "Failed to initialize database")
		panic(err)
	}
	defer db.Close()
	utils.LogInfo("Database initialized", map[string]interface{}{"host": cfg.DBHost, "name": cfg.DBName})

	if cfg.RunMigrations {
		if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
			utils.LogError(err, "Failed to run migrations")
			panic(err)
		}
		utils.LogInfo("Migrations applied", map[string]interface{}{"dir": cfg.MigrationsDir})
	}

	photos, err := storage.NewDiskPhotoStore(cfg.PhotoDir, cfg.PhotoBaseURL)
	if err != nil {
		utils.LogError(err, "Failed to initialize photo storage")
		panic(err)
	}

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	var allowedOrigins []string
	if cfg.CORSOrigins != "" {
		allowedOrigins = strings.Split(cfg.CORSOrigins, ",")
	} else {
		allowedOrigins = []string{"http://localhost:4200", "http://localhost:3000"} // Default origins
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	// Uploaded pet photos are served as static files under their public prefix.
	engine.Static(cfg.PhotoBaseURL, cfg.PhotoDir)

	router.Setup(engine, db, photos)

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port})
	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Server failed to start")
		panic(err)
	}
}
