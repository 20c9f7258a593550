package main

import (
	"log"
	"os"

	"aircraft-manufacturing-backend/internal/api/routes"
	"aircraft-manufacturing-backend/internal/config"
	"aircraft-manufacturing-backend/internal/database"
	"aircraft-manufacturing-backend/internal/logger"
	"aircraft-manufacturing-backend/internal/repository"
	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "aircraft-manufacturing-backend/docs" // This is needed for swag
)

//	@title			Aircraft Manufacturing Backend API
//	@version		1.0
//	@description	Backend API for aircraft part production and assembly: teams produce serialized parts under a permission matrix, assembly teams consume them into aircraft, and the inventory reports readiness against per-type requirement tables.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == "sqlite" {
		dsn = cfg.SQLitePath
	}
	db, err := database.Initialize(dsn, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Seed reference data and starter accounts
	if cfg.SeedOnStartup {
		seeder := service.NewSeedService(
			repository.NewTeamTypeRepository(db),
			repository.NewTeamRepository(db),
			repository.NewUserRepository(db),
			repository.NewTeamMemberRepository(db),
			repository.NewPartTypeRepository(db),
			repository.NewAircraftTypeRepository(db),
			repository.NewPermissionRepository(db),
			repository.NewRequirementRepository(db),
			logger.New(),
		)
		if err := seeder.Seed(); err != nil {
			logrus.Fatal("Failed to seed default data:", err)
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
