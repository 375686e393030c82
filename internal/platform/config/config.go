package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	CORSAllowOrigins []string
	RateLimitPerMin  int64
	MigrationsPath   string
	RunMigrations    bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("RATE_LIMIT_PER_MIN", 300)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RUN_MIGRATIONS", true)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")
	cfg.RateLimitPerMin = viper.GetInt64("RATE_LIMIT_PER_MIN")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")

	return cfg, nil
}
