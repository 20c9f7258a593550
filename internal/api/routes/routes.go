package routes

import (
	"time"

	"aircraft-manufacturing-backend/internal/api/handlers"
	"aircraft-manufacturing-backend/internal/api/middleware"
	"aircraft-manufacturing-backend/internal/auth"
	"aircraft-manufacturing-backend/internal/config"
	"aircraft-manufacturing-backend/internal/metrics"
	"aircraft-manufacturing-backend/internal/repository"
	"aircraft-manufacturing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	registry := metrics.Default()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.Use(middleware.Metrics(registry))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamTypeRepo := repository.NewTeamTypeRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	partTypeRepo := repository.NewPartTypeRepository(db)
	aircraftTypeRepo := repository.NewAircraftTypeRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	requirementRepo := repository.NewRequirementRepository(db)
	partRepo := repository.NewPartRepository(db)
	aircraftRepo := repository.NewAircraftRepository(db)

	// Initialize services
	cacheTTL := time.Duration(cfg.PermissionCacheTTL) * time.Second
	permissionService := service.NewPermissionService(permissionRepo, validator, cacheTTL)
	partService := service.NewPartService(partRepo, userRepo, memberRepo, partTypeRepo, aircraftTypeRepo, permissionService, validator)
	assemblyService := service.NewAssemblyService(aircraftRepo, partRepo, memberRepo, aircraftTypeRepo, userRepo, validator)
	inventoryService := service.NewInventoryService(partRepo, partTypeRepo, aircraftTypeRepo, requirementRepo)
	teamService := service.NewTeamService(teamRepo, teamTypeRepo, memberRepo, userRepo, validator)
	userService := service.NewUserService(userRepo, validator)
	partTypeService := service.NewPartTypeService(partTypeRepo, validator)
	aircraftTypeService := service.NewAircraftTypeService(aircraftTypeRepo, validator)
	requirementService := service.NewRequirementService(requirementRepo, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	partHandler := handlers.NewPartHandler(partService)
	aircraftHandler := handlers.NewAircraftHandler(assemblyService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)
	partTypeHandler := handlers.NewPartTypeHandler(partTypeService)
	aircraftTypeHandler := handlers.NewAircraftTypeHandler(aircraftTypeService)
	permissionHandler := handlers.NewPermissionHandler(permissionService)
	requirementHandler := handlers.NewRequirementHandler(requirementService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Part routes
		parts := v1.Group("/parts")
		{
			parts.GET("", partHandler.ListParts)
			parts.POST("", partHandler.CreatePart)
			parts.GET("/:id", partHandler.GetPart)
			parts.DELETE("/:id", partHandler.RecyclePart)
			parts.GET("/by-serial/:serial", partHandler.GetPartBySerialNumber)
		}

		// Aircraft routes. Aircraft are immutable after assembly: updates
		// answer 405.
		aircraft := v1.Group("/aircraft")
		{
			aircraft.GET("", aircraftHandler.ListAircraft)
			aircraft.POST("", aircraftHandler.AssembleAircraft)
			aircraft.GET("/requirements", inventoryHandler.GetRequirements)
			aircraft.GET("/:id", aircraftHandler.GetAircraft)
			aircraft.PUT("/:id", aircraftHandler.MethodNotAllowed)
			aircraft.PATCH("/:id", aircraftHandler.MethodNotAllowed)
			aircraft.DELETE("/:id", aircraftHandler.DeleteAircraft)
			aircraft.GET("/by-serial/:serial", aircraftHandler.GetAircraftBySerialNumber)
		}

		// Inventory routes
		inventory := v1.Group("/inventory")
		{
			inventory.GET("/readiness/:aircraft_type_id", inventoryHandler.CheckReadiness)
			inventory.GET("/status", inventoryHandler.GetFullInventoryStatus)
			inventory.GET("/status/:aircraft_type_id", inventoryHandler.GetInventoryStatus)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", authMiddleware.RequireAdmin(), teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", authMiddleware.RequireAdmin(), teamHandler.UpdateTeam)
			teams.DELETE("/:id", authMiddleware.RequireAdmin(), teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.GetTeamMembers)
			teams.POST("/:id/members", authMiddleware.RequireAdmin(), teamHandler.AddMember)
			teams.DELETE("/:id/members/:member_id", authMiddleware.RequireAdmin(), teamHandler.RemoveMember)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.Me)
			users.GET("", authMiddleware.RequireAdmin(), userHandler.ListUsers)
			users.POST("", authMiddleware.RequireAdmin(), userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", authMiddleware.RequireAdmin(), userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequireAdmin(), userHandler.DeleteUser)
		}

		// Part type catalog routes
		partTypes := v1.Group("/part-types")
		{
			partTypes.GET("", partTypeHandler.ListPartTypes)
			partTypes.POST("", authMiddleware.RequireAdmin(), partTypeHandler.CreatePartType)
			partTypes.GET("/:id", partTypeHandler.GetPartType)
			partTypes.PUT("/:id", authMiddleware.RequireAdmin(), partTypeHandler.UpdatePartType)
			partTypes.DELETE("/:id", authMiddleware.RequireAdmin(), partTypeHandler.DeletePartType)
		}

		// Aircraft type catalog routes
		aircraftTypes := v1.Group("/aircraft-types")
		{
			aircraftTypes.GET("", aircraftTypeHandler.ListAircraftTypes)
			aircraftTypes.POST("", authMiddleware.RequireAdmin(), aircraftTypeHandler.CreateAircraftType)
			aircraftTypes.GET("/:id", aircraftTypeHandler.GetAircraftType)
			aircraftTypes.PUT("/:id", authMiddleware.RequireAdmin(), aircraftTypeHandler.UpdateAircraftType)
			aircraftTypes.DELETE("/:id", authMiddleware.RequireAdmin(), aircraftTypeHandler.DeleteAircraftType)
		}

		// Permission matrix routes
		permissions := v1.Group("/permissions")
		{
			permissions.GET("", permissionHandler.ListPermissions)
			permissions.POST("", authMiddleware.RequireAdmin(), permissionHandler.CreatePermission)
			permissions.GET("/:id", permissionHandler.GetPermission)
			permissions.PUT("/:id", authMiddleware.RequireAdmin(), permissionHandler.UpdatePermission)
			permissions.DELETE("/:id", authMiddleware.RequireAdmin(), permissionHandler.DeletePermission)
		}

		// Requirement registry routes
		requirements := v1.Group("/requirements")
		{
			requirements.GET("", requirementHandler.ListRequirements)
			requirements.POST("", authMiddleware.RequireAdmin(), requirementHandler.CreateRequirement)
			requirements.GET("/:id", requirementHandler.GetRequirement)
			requirements.PUT("/:id", authMiddleware.RequireAdmin(), requirementHandler.UpdateRequirement)
			requirements.DELETE("/:id", authMiddleware.RequireAdmin(), requirementHandler.DeleteRequirement)
		}
	}

	return router
}
