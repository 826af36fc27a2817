package main

import (
	"log"

	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/config"
	"github.com/nivaranatech/opsdesk-api/internal/infrastructure/database"
	"github.com/nivaranatech/opsdesk-api/internal/infrastructure/repository"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/handler"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/routes"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to the durable settings database
	db, err := database.NewSQLiteDB(&cfg.Settings)
	if err != nil {
		log.Fatalf("Failed to open settings database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize the in-memory state store with demo data
	st := store.New(store.DefaultSeed())

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	authService := service.NewAuthService(st, jwtManager)
	inventoryService := service.NewInventoryService(st)
	stockService := service.NewStockService(st)
	salesService := service.NewSalesService(st)
	amcService := service.NewAMCService(st)
	workshopService := service.NewWorkshopService(st)
	hrService := service.NewHRService(st)
	userService := service.NewUserService(st)
	dashboardService := service.NewDashboardService(st)
	settingsService := service.NewSettingsService(settingsRepo)
	exportService := service.NewExportService(st)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, userService),
		Inventory: handler.NewInventoryHandler(inventoryService, exportService),
		Stock:     handler.NewStockHandler(stockService, exportService),
		Sales:     handler.NewSalesHandler(salesService),
		AMC:       handler.NewAMCHandler(amcService),
		Workshop:  handler.NewWorkshopHandler(workshopService),
		HR:        handler.NewHRHandler(hrService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
