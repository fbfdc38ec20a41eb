package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMongo    = "mongo"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DatabaseName string
	LogLevel     slog.Level
	LogFormat    string
}

// ParseFlags validates flags and fills the rest from the environment.
// A .env file in the working directory is loaded first if present; real
// environment variables take precedence over it.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	_ = godotenv.Load()

	fs := flag.NewFlagSet("awesome-answers", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mongo)")
	fs.StringVar(&cfg.DatabaseName, "db-name", "", "Database name (mongo only)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseMongo:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = os.Getenv("DATABASE_NAME")
		if cfg.DatabaseName == "" {
			cfg.DatabaseName = "awesome_answers"
		}
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
		if cfg.LogFormat == "" {
			cfg.LogFormat = LogFormatText
		}
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return Config{}, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// NewLogger builds the process logger described by cfg
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
