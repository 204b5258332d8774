package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"adconnect/internal/database"
	"adconnect/internal/repository"
)

// Removes expired refresh tokens. Intended to run from cron.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	tokens := repository.NewRefreshTokenRepository(db)
	removed, err := tokens.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", removed)
}
