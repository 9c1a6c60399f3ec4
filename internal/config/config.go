package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MongoConfig holds database configuration
type MongoConfig struct {
	URI             string
	DBName          string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	UseTransactions bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// RevalidateConfig holds the frontend cache-invalidation hook configuration.
// An empty URL disables revalidation.
type RevalidateConfig struct {
	URL    string
	Secret string
}

// SeedConfig holds the bootstrap admin credentials (optional).
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// Config holds all configuration
type Config struct {
	Server          ServerConfig
	Mongo           MongoConfig
	JWT             JWTConfig
	Revalidate      RevalidateConfig
	Seed            SeedConfig
	LogLevel        string
	FrontendOrigins string
	UploadDir       string
}

// Load reads configuration from the environment. A .env file is optional.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:             os.Getenv("MONGO_URI"),
			DBName:          getEnv("DB_NAME", "mediation_portal"),
			MaxPoolSize:     uint64(getEnvInt("MONGO_MAX_POOL_SIZE", 20)),
			MinPoolSize:     uint64(getEnvInt("MONGO_MIN_POOL_SIZE", 2)),
			UseTransactions: getEnvBool("MONGO_USE_TRANSACTIONS", true),
		},
		JWT: JWTConfig{
			Secret:          os.Getenv("JWT_SECRET"),
			ExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		},
		Revalidate: RevalidateConfig{
			URL:    os.Getenv("REVALIDATE_URL"),
			Secret: os.Getenv("REVALIDATE_SECRET"),
		},
		Seed: SeedConfig{
			AdminEmail:    os.Getenv("ADMIN_EMAIL"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		},
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		FrontendOrigins: getEnv("FRONTEND_ORIGINS", "http://localhost:5173"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
	}

	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGO_URI not set in environment")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set in environment")
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
