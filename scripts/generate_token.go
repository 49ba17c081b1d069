package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Claims struct {
	AccountID string `json:"account_id"`
	PlanTier  string `json:"plan_tier"`
	jwt.RegisteredClaims
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Define command line flags
	accountID := flag.String("account", "", "Account ID for the token")
	planTier := flag.String("tier", "free", "Plan tier claim (free, pro, agency)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *accountID == "" {
		log.Fatal("Account ID is required")
	}

	// Create claims
	claims := &Claims{
		AccountID: *accountID,
		PlanTier:  *planTier,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Get JWT secret from environment
	jwtSecret := []byte(getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key"))

	// Sign the token
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
