package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP
	Host           string
	Port           int
	AllowedOrigins []string
	StaticDir      string

	// Auth
	APIKey string

	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
}

func Load() *Config {
	// The API key protects every /secure route. Refuse to start without one
	// rather than silently running an open server.
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		log.Fatalln("API_KEY must be set in the environment")
	}

	dbPassword := getEnv("DB_PASSWORD", "")
	if dbPassword == "" {
		log.Println("WARNING: DB_PASSWORD not set - this is insecure for production!")
		dbPassword = "changeme"
	}

	return &Config{
		Host:           getEnv("HOST", "127.0.0.1"),
		Port:           getEnvInt("PORT", 8000),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		StaticDir:      getEnv("STATIC_DIR", "./static"),

		APIKey: apiKey,

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "vps"),
		DBPassword: dbPassword,
		DBName:     getEnv("DB_NAME", "vps"),
	}
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
