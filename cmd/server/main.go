package main

import (
	"log"
	"net/http"

	"energytrack/internal/config"
	"energytrack/internal/db"
	"energytrack/internal/http/router"
	"energytrack/internal/security"
	"energytrack/internal/views"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config/app.yaml")
	if err != nil {
		log.Printf("Failed to load config: %v, using defaults", err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	// Initialize database
	database, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize session store
	sessions := security.NewSessions(cfg.SessionSecret)

	// Parse view templates
	renderer, err := views.New()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Setup router
	r := router.Setup(database, sessions, renderer)

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
