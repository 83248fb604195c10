package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	Env string `mapstructure:"APP_ENV"` // development | production

	// Persistence
	DataDir       string `mapstructure:"DEPOT_DATA_DIR"`
	SlotPrefix    string `mapstructure:"DEPOT_SLOT_PREFIX"`
	SchemaVersion string `mapstructure:"DEPOT_SCHEMA_VERSION"` // empty = compiled-in model.SchemaVersion

	// Dispatcher
	LatencyMs int `mapstructure:"DEPOT_LATENCY_MS"` // simulated network delay; 0 disables

	// Auth
	BcryptCost int `mapstructure:"DEPOT_BCRYPT_COST"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DEPOT_DATA_DIR", "/tmp/depot/data")
	viper.SetDefault("DEPOT_SLOT_PREFIX", "depot_")
	viper.SetDefault("DEPOT_SCHEMA_VERSION", "")
	viper.SetDefault("DEPOT_LATENCY_MS", 150)
	viper.SetDefault("DEPOT_BCRYPT_COST", 10)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
