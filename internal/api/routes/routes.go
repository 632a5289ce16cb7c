package routes

import (
	"homefinder-backend/internal/api/handlers"
	"homefinder-backend/internal/api/middleware"
	"homefinder-backend/internal/auth"
	"homefinder-backend/internal/cep"
	"homefinder-backend/internal/config"
	"homefinder-backend/internal/repository"
	"homefinder-backend/internal/service"
	"homefinder-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	amenityRepo := repository.NewAmenityRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	// Initialize external clients
	cepClient := cep.NewClient(cfg.ViaCEPBaseURL)
	objectStorage := storage.NewSupabaseStorage(cfg.StorageURL, cfg.StorageServiceKey, cfg.StorageBucket)

	// Initialize services
	locationService := service.NewLocationService(locationRepo, cepClient)
	propertyService := service.NewPropertyService(propertyRepo, locationRepo, amenityRepo, objectStorage, validator)
	amenityService := service.NewAmenityService(amenityRepo)
	leadService := service.NewLeadService(leadRepo, validator)
	authService := auth.NewService(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	adminPropertyHandler := handlers.NewAdminPropertyHandler(propertyService)
	locationHandler := handlers.NewLocationHandler(locationService)
	cepHandler := handlers.NewCEPHandler(locationService)
	amenityHandler := handlers.NewAmenityHandler(amenityService)
	leadHandler := handlers.NewLeadHandler(leadService)
	authHandler := handlers.NewAuthHandler(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	api := router.Group("/api")
	{
		api.GET("/properties", propertyHandler.ListProperties)
		api.GET("/properties/:state/:city/:neighborhood/:slug", propertyHandler.GetPropertyBySlugPath)
		api.POST("/leads", leadHandler.SubmitLead)
		api.GET("/leads", auth.RequireAuth(authService), leadHandler.ListLeads)
	}

	// Admin login is the only unauthenticated admin route
	router.POST("/api/admin/auth", authHandler.Login)

	// Admin routes - everything below requires a valid bearer token
	admin := router.Group("/api/admin")
	admin.Use(auth.RequireAuth(authService))
	{
		admin.GET("/properties", adminPropertyHandler.ListAllProperties)
		admin.POST("/properties", adminPropertyHandler.CreateProperty)
		admin.GET("/properties/:id", adminPropertyHandler.GetProperty)
		admin.PUT("/properties/:id", adminPropertyHandler.UpdateProperty)
		admin.DELETE("/properties/:id", adminPropertyHandler.DeleteProperty)

		admin.GET("/states", locationHandler.ListStates)
		admin.GET("/cities", locationHandler.ListCities)
		admin.GET("/neighborhoods", locationHandler.ListNeighborhoods)
		admin.POST("/neighborhoods", locationHandler.CreateNeighborhood)

		admin.GET("/cep/:code", cepHandler.LookupCEP)
		admin.GET("/cep/:code/selection", cepHandler.ResolveCEPSelection)

		admin.GET("/amenities", amenityHandler.ListAmenities)
	}

	return router
}
