package main

import (
	"log"

	"github.com/jengwei/trip-report/internal/api"
	"github.com/jengwei/trip-report/internal/config"
	"github.com/jengwei/trip-report/internal/database"
	"github.com/jengwei/trip-report/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	collector := metrics.NewCollector()
	router := api.SetupRouter(cfg, collector)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
