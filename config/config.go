package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	Store      StoreConfig
}

type StoreConfig struct {
	// Path is the location of the SQLite file backing the key-value store.
	Path string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	storeConfig := StoreConfig{
		Path: getEnv("STORE_PATH", "data/simhub.db"),
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		Store:      storeConfig,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
