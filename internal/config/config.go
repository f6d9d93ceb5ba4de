package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
	DriverMongo    = "mongo"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// HTTP server
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database (driver switch via ENV, default: sqlite)
	DBDriver      string
	DBConnection  string
	MongoDatabase string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Goalsetter"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "5000"),

		// HTTP server
		ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  envDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),

		// Database
		DBDriver:      envString("DB_DRIVER", DriverSQLite),
		DBConnection:  envString("DB_CONNECTION", "./data/goalsetter.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		MongoDatabase: envString("MONGO_DATABASE", "goalsetter"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 30*24*time.Hour), // 30 days

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction refuses to start a production deployment on the local
// SQLite file.
func validateProduction(cfg *Config) {
	if cfg.DBDriver == DriverSQLite {
		slog.Error("production deployment requires DB_DRIVER=pgx or DB_DRIVER=mongo",
			"hint", "set APP_ENV=development for local testing with sqlite")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) UsesMongo() bool {
	return c.DBDriver == DriverMongo
}
