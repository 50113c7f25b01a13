package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting of the API server, the web client and the CLI.
type Config struct {
	HTTP struct {
		Addr string
	}
	Web struct {
		Addr       string
		APIBaseURL string
	}
	Database DatabaseConfig
	Redis    struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret     string
		AccessTTL  time.Duration
		RefreshTTL time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
	Seed struct {
		AdminPhone    string
		AdminPassword string
	}
	HotelName string
	GinMode   string
}

// DatabaseConfig selects the gorm dialector and its connection settings.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxConns   int
	MaxIdle    int
	SQLitePath string
}

// DSN returns the postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.Web.Addr = getEnv("WEB_ADDR", ":3000")
	cfg.Web.APIBaseURL = getEnv("API_BASE_URL", "http://localhost:8080")

	cfg.Database.Driver = getEnv("DB_DRIVER", "sqlite")
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Name = getEnv("DB_NAME", "hotel")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "20"), 20)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)
	cfg.Database.SQLitePath = getEnv("SQLITE_PATH", "hotel.db")

	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	cfg.JWT.AccessTTL = parseDuration(getEnv("JWT_ACCESS_TTL", "24h"), 24*time.Hour)
	cfg.JWT.RefreshTTL = parseDuration(getEnv("JWT_REFRESH_TTL", "168h"), 7*24*time.Hour)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Seed.AdminPhone = getEnv("SEED_ADMIN_PHONE", "01700000000")
	cfg.Seed.AdminPassword = getEnv("SEED_ADMIN_PASSWORD", "ChangeMe123!")

	cfg.HotelName = getEnv("HOTEL_NAME", "Hotel Amin International")
	cfg.GinMode = getEnv("GIN_MODE", "release")
	return cfg
}

// Validate reports settings the servers cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" && c.GinMode != "debug" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
