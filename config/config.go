package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	Storage     StorageConfig
	Log         LogConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type GoogleOAuthConfig struct {
	Enabled  bool
	ClientID string
}

// StorageConfig describes the local object store that holds profile
// pictures. Files saved under Dir are served publicly under BaseURL.
type StorageConfig struct {
	Dir     string
	BaseURL string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        envOr("APP_NAME", "peextrap"),
			Environment: envOr("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: envOr("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:            envOr("DB_HOST", "localhost"),
			Port:            envIntOr("DB_PORT", 5432),
			User:            envOr("DB_USER", "postgres"),
			Password:        os.Getenv("DB_PASSWORD"),
			DBName:          envOr("DB_NAME", "peextrap"),
			SSLMode:         envOr("DB_SSLMODE", "disable"),
			MaxOpenConns:    envIntOr("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envIntOr("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDurationOr("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			TTL:    envDurationOr("JWT_TTL", 24*time.Hour),
		},
		GoogleOAuth: GoogleOAuthConfig{
			Enabled:  os.Getenv("GOOGLE_OAUTH_ENABLED") == "true",
			ClientID: os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
		},
		Storage: StorageConfig{
			Dir:     envOr("STORAGE_DIR", "./uploads"),
			BaseURL: envOr("STORAGE_BASE_URL", "/uploads"),
		},
		Log: LogConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Pretty: os.Getenv("LOG_PRETTY") == "true",
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// DSN builds the postgres connection string from the individual fields,
// unless DATABASE_DSN overrides it entirely.
func (d DatabaseConfig) DSN() string {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
