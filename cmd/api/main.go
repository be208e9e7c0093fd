package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"paralympics-api-go/internal/auth"
	"paralympics-api-go/internal/handler"
	"paralympics-api-go/internal/store"
	"paralympics-api-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to database
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize storage
	st := store.New(db)
	if err := st.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// Initialize services
	authService := auth.NewAuthService(db, cfg.JWTSecret)

	// Set up router
	router := handler.NewRouter(st, authService, cfg.JWTSecret)

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
