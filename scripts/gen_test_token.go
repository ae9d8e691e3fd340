package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"codeberg.org/roomrevive/server/internal/auth"
	"codeberg.org/roomrevive/server/roomrevive/credits"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "user id to put in the sub claim (random uuid when empty)")
	email := flag.String("email", "test@roomrevive.app", "email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	// seed the credit row so the first request sees the free allowance
	if dbConnString := os.Getenv("DATABASE_URL"); dbConnString != "" {
		ctx := context.Background()

		dbPool, err := pgxpool.New(ctx, dbConnString)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer dbPool.Close()

		freeCredits := 3
		if n, err := strconv.Atoi(os.Getenv("FREE_MONTHLY_CREDITS")); err == nil && n > 0 {
			freeCredits = n
		}

		ledger := credits.NewPostgresLedger(dbPool, freeCredits)
		row, err := ledger.GetOrCreate(ctx, *userID)
		if err != nil {
			log.Fatalf("Failed to seed credits: %v", err)
		}

		fmt.Printf("Credits for %s: tier=%s remaining=%d\n", row.UserID, row.Tier, row.CreditsRemaining)
	}

	token, err := auth.NewVerifier(secret).Issue(*userID, *email, *ttl)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\nTest JWT Token (user %s):\n%s\n\n", *userID, token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
