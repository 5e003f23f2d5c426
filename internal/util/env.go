package util

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if one exists. Missing files are fine, real
// deployments set the environment directly.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
