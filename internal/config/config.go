package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	Database       DatabaseConfig
	Cache          CacheConfig
	ReportCron     string
	SeedDevelopers bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string // mysql or sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

// CacheConfig holds valkey configuration; empty Addr disables caching
type CacheConfig struct {
	Addr string
	TTL  time.Duration
}

// Enabled reports whether a cache address is configured
func (c CacheConfig) Enabled() bool {
	return c.Addr != ""
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}

	cache, err := loadCacheConfig()
	if err != nil {
		return nil, err
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DEVELOPERS", strconv.FormatBool(appMode == "dev")))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEVELOPERS: %w", err)
	}

	config := &Config{
		AppMode:        appMode,
		Port:           getEnv("PORT", "3000"),
		Database:       database,
		Cache:          cache,
		ReportCron:     getEnv("REPORT_CRON", "30 8 * * *"),
		SeedDevelopers: seed,
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	prefix := "DEV_"
	defaultDriver := "sqlite"
	if mode == "prod" {
		prefix = "PROD_"
		defaultDriver = "mysql"
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", defaultDriver)))
	if driver != "mysql" && driver != "sqlite" {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql' or 'sqlite')", driver)
	}

	return DatabaseConfig{
		Driver:     driver,
		Host:       getEnv(prefix+"DB_HOST", "localhost"),
		Port:       getEnv(prefix+"DB_PORT", "3306"),
		User:       getEnv(prefix+"DB_USER", "root"),
		Password:   getEnv(prefix+"DB_PASS", ""),
		DBName:     getEnv(prefix+"DB_NAME", "dmaker"),
		SQLitePath: getEnv("SQLITE_PATH", "data/dmaker.db"),
	}, nil
}

// loadCacheConfig loads valkey cache config
func loadCacheConfig() (CacheConfig, error) {
	ttlSeconds, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	if err != nil || ttlSeconds < 1 {
		return CacheConfig{}, fmt.Errorf("invalid CACHE_TTL_SECONDS: '%s'", os.Getenv("CACHE_TTL_SECONDS"))
	}

	return CacheConfig{
		Addr: strings.TrimSpace(getEnv("CACHE_ADDR", "")),
		TTL:  time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return origins
}
