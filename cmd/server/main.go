package main

import (
	"flag"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/app"
	"github.com/shrimpsizemoose/stipendium/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug.Printf("No .env file loaded: %v", err)
	}

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to start tracker: %v", err)
	}
	defer service.Close()

	router := handlers.NewRouter(service)

	logger.Info.Printf("Starting stipendium server on %s", service.Config.Server.Port)
	logger.Debug.Printf("Seeded %d scholarships and %d applications",
		len(service.Tracker.Scholarships.List()),
		len(service.Tracker.Applications.List()),
	)
	if err := http.ListenAndServe(service.Config.Server.Port, router); err != nil {
		logger.Error.Fatalf("Stipendium server failed: %v", err)
	}
}
