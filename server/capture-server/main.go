package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yeti47/cryosnap/server/capture-server/handlers"
	"github.com/yeti47/cryosnap/server/capture-server/middleware"
	"github.com/yeti47/cryosnap/server/core/ccc/logging"
	"github.com/yeti47/cryosnap/server/core/config"
	"github.com/yeti47/cryosnap/server/core/snapshots"
)

// snapshotPath is the single file every accepted upload overwrites
const snapshotPath = "snapshot.jpg"

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Save the config in case it was not found
	if err := cfg.SaveConfig(*configPath); err != nil {
		log.Printf("Failed to save configuration: %v", err)
	}

	// Initialize logger
	logger := logging.CreateLogger(logging.LogLevel(cfg.LogLevel), cfg.LogPath, "capture-server")
	logger.Info("Starting capture server", "address", cfg.Address(), "snapshotPath", snapshotPath)

	store, err := snapshots.NewFileStore(snapshotPath)
	if err != nil {
		log.Fatalf("Failed to create snapshot store: %v", err)
	}
	ingestor := snapshots.NewIngestor(logger, store, cfg.MaxSnapshotPixels)

	// Initialize handlers and middleware
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	snapshotHandler := handlers.NewSnapshotHandler(logger, ingestor, cfg.MaxUploadBytes())

	router := initializeGin(cfg)
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Add middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware.Handle())

	// Set up routes
	setupRoutes(router, snapshotHandler)

	logger.Info("Server listening", "address", cfg.Address())

	if err := http.ListenAndServe(cfg.Address(), router); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

// setupRoutes configures the HTTP routes
func setupRoutes(router *gin.Engine, snapshotHandler *handlers.SnapshotHandler) {
	// Static monitoring record
	router.GET("/status", handlers.GetStatus)

	// Snapshot upload endpoint
	router.POST("/camera", snapshotHandler.UploadSnapshot)

	// Health check endpoint
	router.GET("/health", handlers.GetHealth)
}
