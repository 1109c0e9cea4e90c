package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server.
type Config struct {
	Port         string
	AWSRegion    string
	S3BucketName string
}

// Load reads settings from the environment, falling back to a local .env
// file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		S3BucketName: getEnv("S3_BUCKET_NAME", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
