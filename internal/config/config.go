package config

import (
	"fmt"
	"strconv"
	"time"

	"gatoco_backend/pkg/utils"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Port          string
	JWTSecret     string
	JWTTTL        time.Duration
	CORSOrigins   string
	PhotoDir      string // where pet photos are stored on disk
	PhotoBaseURL  string // public URL prefix the stored photos are served under
	MigrationsDir string
	RunMigrations bool
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing values fall back to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Not an error in production, where env vars are injected directly.
		utils.LogInfo("No .env file found, using environment variables or defaults")
	}

	ttlHours, err := strconv.Atoi(utils.Getenv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	return &Config{
		DBHost:     utils.Getenv("DB_HOST", "localhost"),
		DBPort:     utils.Getenv("DB_PORT", "5432"),
		DBUser:     utils.Getenv("DB_USER", "gatoco_user"),
		DBPassword: utils.Getenv("DB_PASSWORD", "gatoco_password"),
		DBName:     utils.Getenv("DB_NAME", "db_gatoco"),
		DBSSLMode:  utils.Getenv("DB_SSLMODE", "disable"),

		Port:          utils.Getenv("PORT", "8080"),
		JWTSecret:     utils.Getenv("JWT_SECRET", "dev-only-secret-change-me"),
		JWTTTL:        time.Duration(ttlHours) * time.Hour,
		CORSOrigins:   utils.Getenv("CORS_ALLOWED_ORIGINS", ""),
		PhotoDir:      utils.Getenv("PHOTO_DIR", "uploads/pets"),
		PhotoBaseURL:  utils.Getenv("PHOTO_BASE_URL", "/uploads/pets"),
		MigrationsDir: utils.Getenv("MIGRATIONS_DIR", "migrations"),
		RunMigrations: utils.Getenv("RUN_MIGRATIONS", "true") == "true",
	}
}

// DSN renders the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
