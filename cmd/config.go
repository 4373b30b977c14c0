package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"orderintake/internal/adapters/out/postgres"
	"orderintake/internal/core/domain/model/order"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"orders"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// RulesFile points at a YAML rule table. Empty selects the built-in default table.
	RulesFile string `env:"RULES_FILE"`
	// StatusTransitions is "strict" (lifecycle graph enforced) or "legacy" (any status).
	StatusTransitions string `env:"STATUS_TRANSITIONS" envDefault:"strict"`
	// StatsSchedule is the cron schedule of the order status snapshot job.
	StatsSchedule string `env:"STATS_SCHEDULE" envDefault:"@every 30s"`

	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig loads the optional dotenv files, then parses and checks the environment.
// Variables already set in the environment win over dotenv values.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports settings that parse but cannot be used.
func (c Config) Validate() error {
	_, policyErr := c.TransitionPolicy()
	_, levelErr := c.SlogLevel()

	var timeoutErr error
	if c.ShutdownTimeout <= 0 {
		timeoutErr = fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}

	var portErr error
	if strings.TrimSpace(c.HTTPPort) == "" {
		portErr = errors.New("HTTP_PORT must not be empty")
	}

	return errors.Join(policyErr, levelErr, timeoutErr, portErr)
}

// TransitionPolicy resolves STATUS_TRANSITIONS.
func (c Config) TransitionPolicy() (order.TransitionPolicy, error) {
	return order.ParseTransitionPolicy(c.StatusTransitions)
}

// SlogLevel resolves LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// EchoLogLevel maps LOG_LEVEL onto echo's gommon logger.
func (c Config) EchoLogLevel() log.Lvl {
	level, _ := c.SlogLevel()
	switch {
	case level >= slog.LevelError:
		return log.ERROR
	case level >= slog.LevelWarn:
		return log.WARN
	case level >= slog.LevelInfo:
		return log.INFO
	default:
		return log.DEBUG
	}
}

// Connection returns the database settings.
func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Address is the listen address of the HTTP server.
func (c Config) Address() string {
	return "0.0.0.0:" + c.HTTPPort
}
