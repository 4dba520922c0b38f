package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite    = "sqlite"
	DriverMySQL     = "mysql"
	DriverFirestore = "firestore"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	StoreDriver        string
	DBSource           string
	FirestoreProjectID string
	Collection         string

	ListingRoute string
	SeedDemoData bool

	RateLimitRPS   float64
	RateLimitBurst int

	ShutdownTimeout time.Duration
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("Warning: .env file not found or error loading: %v", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		DBSource:           getEnv("DB_SOURCE", "food_orders.db"),
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
		Collection:         getEnv("FOOD_ORDER_COLLECTION", "FoodOrder"),
		ListingRoute:       getEnv("LISTING_ROUTE", "/GetFoodItems"),
		SeedDemoData:       getEnvAsBool("SEED_DEMO_DATA", false),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),
		ShutdownTimeout:    time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT", 15)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.StoreDriver {
	case DriverSQLite, DriverMySQL:
		if c.DBSource == "" {
			return fmt.Errorf("DB_SOURCE is required for driver %s", c.StoreDriver)
		}
	case DriverFirestore:
		if c.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID is required for driver firestore")
		}
	default:
		return fmt.Errorf("invalid store driver: %s (must be sqlite, mysql, or firestore)", c.StoreDriver)
	}

	if c.Collection == "" {
		return fmt.Errorf("FOOD_ORDER_COLLECTION is required")
	}

	if !strings.HasPrefix(c.ListingRoute, "/") {
		return fmt.Errorf("LISTING_ROUTE must start with /: %q", c.ListingRoute)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
