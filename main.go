package main

import (
	"log"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/controllers"
	"github.com/Govind-619/EstateSphere/routes"
	"github.com/Govind-619/EstateSphere/scheduler"
	"github.com/Govind-619/EstateSphere/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create sample admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Seed property types if none exist
	if err := controllers.CreateDefaultPropertyTypes(); err != nil {
		utils.LogError("Failed to seed property types: %v", err)
		log.Fatal("Failed to seed property types:", err)
	}

	// Start the offer expiry sweep
	sweep := scheduler.New(cfg.SweepCron)
	if err := sweep.Start(); err != nil {
		utils.LogError("Failed to start sweep scheduler: %v", err)
		log.Fatal("Failed to start sweep scheduler:", err)
	}
	defer sweep.Stop()

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
