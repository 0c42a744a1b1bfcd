package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "github.com/JSMaruthi/Dip-Final-Year-CSE/internal/api/http"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/config"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/logger"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/repository/postgres"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/security"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting E-Waste Management Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	authSvc := service.NewAuthService(store.Users(), tokenManager)
	userSvc := service.NewUserService(store.Users())
	requestSvc := service.NewRequestService(store, cfg.QueryTimeout())
	analyticsSvc := service.NewAnalyticsService(store.Requests(), cfg.QueryTimeout())
	bootstrapSvc := service.NewBootstrapService(store.Users())

	// Ensure the default accounts exist on every start
	if err := bootstrapSvc.SeedDefaultAccounts(context.Background()); err != nil {
		logger.Error("Failed to seed default accounts", "error", err)
		log.Fatalf("Failed to seed default accounts: %v", err)
	}

	// Set up HTTP server
	handlers := httpapi.NewHandlers(authSvc, userSvc, requestSvc, analyticsSvc)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager, store.Users())
	router := httpapi.NewRouter(handlers, authMiddleware)
	handler := httpapi.CORSMiddleware(cfg.CORS.AllowedOrigins)(router)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), handler); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
