package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AppEnv           string
	LogLevel         string
	PublicDir        string
	CORSOrigins      string
	EnableDocs       bool
	EnableTestRoutes bool
	SeedOnStart      bool
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: %s=%q is not a boolean, using %t", key, v, fallback)
		return fallback
	}
	return b
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	return Config{
		Port:             getEnv("PORT", "3000"),
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PublicDir:        getEnv("PUBLIC_DIR", "./public"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
		EnableDocs:       getEnvBool("ENABLE_DOCS", true),
		EnableTestRoutes: getEnvBool("ENABLE_TEST_ROUTES", false),
		SeedOnStart:      getEnvBool("SEED_ON_START", false),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
