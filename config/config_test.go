package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "STORE_DRIVER", "DB_SOURCE",
		"FIRESTORE_PROJECT_ID", "FOOD_ORDER_COLLECTION", "LISTING_ROUTE",
		"SEED_DEMO_DATA", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "FoodOrder", cfg.Collection)
	assert.Equal(t, "/GetFoodItems", cfg.ListingRoute)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Firestore")
	t.Setenv("FIRESTORE_PROJECT_ID", "demo-project")
	t.Setenv("LISTING_ROUTE", "/orders")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverFirestore, cfg.StoreDriver)
	assert.Equal(t, "demo-project", cfg.FirestoreProjectID)
	assert.Equal(t, "/orders", cfg.ListingRoute)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:           "8080",
			LogLevel:       "info",
			StoreDriver:    DriverSQLite,
			DBSource:       "test.db",
			Collection:     "FoodOrder",
			ListingRoute:   "/GetFoodItems",
			RateLimitRPS:   5,
			RateLimitBurst: 10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid sqlite", mutate: func(c *Config) {}},
		{name: "valid mysql", mutate: func(c *Config) { c.StoreDriver = DriverMySQL }},
		{name: "unknown driver", mutate: func(c *Config) { c.StoreDriver = "mongo" }, wantErr: true},
		{name: "firestore without project", mutate: func(c *Config) { c.StoreDriver = DriverFirestore }, wantErr: true},
		{name: "firestore with project", mutate: func(c *Config) {
			c.StoreDriver = DriverFirestore
			c.FirestoreProjectID = "p"
		}},
		{name: "relative listing route", mutate: func(c *Config) { c.ListingRoute = "GetFoodItems" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimitBurst = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
