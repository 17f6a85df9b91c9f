package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
}

var required = []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME"}

// Load reads .env if present, then validates the process environment.
// Every required key must be set and non-empty before anything else
// starts; the returned error names the first missing key.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file; using process environment")
	}

	for _, key := range required {
		if os.Getenv(key) == "" {
			return Config{}, fmt.Errorf("required environment variable %s is not set", key)
		}
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	appPort := os.Getenv("PORT")
	if appPort == "" {
		appPort = "8080"
	}

	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     dbPort,
		AppPort:    appPort,
	}, nil
}
