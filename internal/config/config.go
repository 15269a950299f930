package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Driver string
	URL    string
}

type MongoConfig struct {
	URI      string
	Database string
}

type ImageConfig struct {
	Bucket        string
	PublicBaseURL string
}

type LogConfig struct {
	Level  slog.Level
	Format string // color, json or text
}

// Config holds everything main needs to wire the service.
type Config struct {
	Port     string
	Database DatabaseConfig
	Mongo    MongoConfig
	Images   ImageConfig
	Log      LogConfig
}

// Load reads the environment, optionally seeded from a .env file.
// A missing .env file is not an error.
func Load(envPath ...string) (*Config, error) {
	_ = godotenv.Load(envPath...)
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, which keeps it testable
// without touching the process environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	cfg.Port = withDefault(getenv("PORT"), "8083")

	cfg.Database.Driver = withDefault(getenv("DB_DRIVER"), "postgres")
	switch cfg.Database.Driver {
	case "postgres", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	cfg.Database.URL = getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg.Mongo.URI = getenv("MONGO_URI")
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	cfg.Mongo.Database = withDefault(getenv("MONGO_DB"), "property_service")

	cfg.Images.Bucket = withDefault(getenv("IMAGE_BUCKET"), "images")
	cfg.Images.PublicBaseURL = strings.TrimRight(
		withDefault(getenv("IMAGE_PUBLIC_BASE_URL"), "http://localhost:"+cfg.Port+"/api/images"),
		"/",
	)

	level, err := parseLevel(getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.Log.Level = level
	cfg.Log.Format = withDefault(strings.ToLower(getenv("LOG_FORMAT")), "color")

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
