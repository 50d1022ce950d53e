package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "rentalhub-backend/internal/api/http"
	"rentalhub-backend/internal/config"
	"rentalhub-backend/internal/logger"
	"rentalhub-backend/internal/repository/rest"
	"rentalhub-backend/internal/service"
	"rentalhub-backend/internal/store"
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
	logger.Info("Starting rental booking backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Record store configuration", "base_url", cfg.Store.BaseURL, "timeout_seconds", cfg.Store.TimeoutSeconds)

	// Initialize record store client and repositories
	client := store.NewClient(cfg.Store.BaseURL, cfg.Store.APIKey, time.Duration(cfg.Store.TimeoutSeconds)*time.Second)
	repos := rest.NewStore(client)

	// Initialize services
	bookingSvc := service.NewBookingService(
		repos.ItemRepository,
		repos.BookingRepository,
		repos.PricingRuleRepository,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(bookingSvc)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
