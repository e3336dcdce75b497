package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application settings loaded from the environment.
type Config struct {
	Port      int
	MongoURI  string
	MongoDB   string
	JWTKey    string
	UploadDir string
	Debug     bool
}

// LoadConfig reads settings from .env (if present) and the environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:      port,
		MongoURI:  getEnv("MONGO_URI", "mongodb://127.0.0.1:27017/maderp"),
		MongoDB:   getEnv("MONGO_DB", "maderp"),
		JWTKey:    getEnv("JWT_KEY", "change-me-in-production"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		Debug:     getEnv("GIN_MODE", "debug") == "debug",
	}
}

// getEnv returns the environment variable or a default when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
