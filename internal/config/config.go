package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Addr    string
	AppName string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:    os.Getenv("APP_ADDR"),
		AppName: os.Getenv("APP_NAME"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.AppName == "" {
		cfg.AppName = "Waypoint"
	}

	return cfg
}
