package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/domain"
	"github.com/kingrain94/property-docs-api/internal/middleware"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	userID := flag.String("user", "", "User ID for the token")
	userType := flag.String("type", string(domain.UserTypeLandlord), "User type: landlord, tenant or admin")
	name := flag.String("name", "", "Display name, used for {LANDLORD_NAME}")
	email := flag.String("email", "", "Email, used for {LANDLORD_EMAIL}")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}
	if !domain.IsValidUserType(*userType) {
		log.Fatalf("Invalid user type %q", *userType)
	}

	auth := middleware.NewAuthMiddleware(&config.Config{
		JWTSecretKey:       getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key"),
		JWTExpirationHours: *expirationHours,
	})

	tokenString, err := auth.GenerateToken(&domain.Identity{
		ID:       *userID,
		UserType: domain.UserType(*userType),
		Name:     *name,
		Email:    *email,
	})
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
