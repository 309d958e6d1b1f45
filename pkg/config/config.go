package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string

	// Remote object store credentials. All three must be present for
	// direct-streaming uploads; otherwise uploads fall back to the
	// memory-buffered path.
	StorageBucket      string
	StorageProjectID   string
	StorageCredentials string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:      getEnv("GCS_BUCKET", ""),
		StorageProjectID:   getEnv("GCS_PROJECT_ID", ""),
		StorageCredentials: getEnv("GCS_CREDENTIALS_JSON", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
