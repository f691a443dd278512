// @title           Dealer Inventory Backend API
// @version         1.0.0
// @description     Backend API for a vehicle dealership: stock inventory with photos, maintenance history, and inventory statistics, backed by Supabase (Postgres, storage, auth).

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealer-inventory-backend/internal/config"
	"dealer-inventory-backend/internal/database"
	"dealer-inventory-backend/internal/handlers"
	"dealer-inventory-backend/internal/logger"
	"dealer-inventory-backend/internal/middleware"
	"dealer-inventory-backend/internal/services"
	"dealer-inventory-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalw("failed to load configuration", "error", err)
	}

	logger.Init(cfg.Environment)
	defer logger.Sync()
	log := logger.Get()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalw("failed to initialize supabase client", "error", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalw("failed to initialize storage client", "error", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("failed to initialize database client", "error", err)
	}
	defer dbClient.Close()

	// Run migrations
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("failed to initialize migrator", "error", err)
	}
	defer migrator.Close()
	if err := migrator.Run(); err != nil {
		log.Fatalw("migration failed", "error", err)
	}
	log.Infow("migrations completed")

	// Services
	autoService := services.NewAutoService(dbClient, storageClient, realtimeClient, cfg.CascadeDeleteMantenimientos)
	imagenService := services.NewImagenService(dbClient, storageClient, realtimeClient, cfg.ImagenMaxDimension)
	mantenimientoService := services.NewMantenimientoService(dbClient)
	estadisticasService := services.NewEstadisticasService(dbClient)

	// Handlers
	autosHandler := handlers.NewAutosHandler(autoService)
	imagenesHandler := handlers.NewImagenesHandler(imagenService)
	mantenimientosHandler := handlers.NewMantenimientosHandler(mantenimientoService)
	estadisticasHandler := handlers.NewEstadisticasHandler(estadisticasService)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(gin.Recovery())

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Vehicle routes
	api.GET("/autos", autosHandler.ListAutos)
	api.GET("/autos/export", autosHandler.ExportAutos)
	api.GET("/autos/:auto_id", autosHandler.GetAuto)
	api.POST("/autos", autosHandler.CreateAuto)
	api.PATCH("/autos/:auto_id", autosHandler.UpdateAuto)
	api.DELETE("/autos/:auto_id", autosHandler.DeleteAuto)

	// Vehicle image routes
	api.POST("/autos/:auto_id/imagenes", imagenesHandler.UploadImagen)
	api.DELETE("/autos/:auto_id/imagenes/:imagen_id", imagenesHandler.DeleteImagen)

	// Maintenance routes
	api.GET("/mantenimientos", mantenimientosHandler.ListMantenimientos)
	api.GET("/mantenimientos/estadisticas", mantenimientosHandler.GetMantenimientoStats)
	api.GET("/mantenimientos/:mantenimiento_id", mantenimientosHandler.GetMantenimiento)
	api.POST("/mantenimientos", mantenimientosHandler.CreateMantenimiento)
	api.PATCH("/mantenimientos/:mantenimiento_id", mantenimientosHandler.UpdateMantenimiento)
	api.DELETE("/mantenimientos/:mantenimiento_id", mantenimientosHandler.DeleteMantenimiento)

	// Statistics routes
	api.GET("/estadisticas/generales", estadisticasHandler.GetGenerales)
	api.GET("/estadisticas/precios", estadisticasHandler.GetPrecios)

	// Start server
	log.Infow("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}
