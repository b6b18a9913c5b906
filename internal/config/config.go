package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"crm/pkg/password"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	OutputTable = "table"
	OutputJSON  = "json"
)

var errInvalidConfig error = errors.New("invalid config")

type App struct {
	Database Database `yaml:"database"`
	Log      Log      `yaml:"log"`
	Password Password `yaml:"password"`
	Output   string   `yaml:"output" env:"CRM_OUTPUT"`
}

type Database struct {
	Driver string `yaml:"driver" env:"CRM_DB_DRIVER"`
	Path   string `yaml:"path" env:"CRM_DB_PATH"` // sqlite file
	DSN    string `yaml:"dsn" env:"CRM_DB_DSN"`   // postgres or mysql connection string
	Debug  bool   `yaml:"debug" env:"CRM_DB_DEBUG"`
}

type Log struct {
	Level string `yaml:"level" env:"CRM_LOG_LEVEL"`
	File  string `yaml:"file" env:"CRM_LOG_FILE"`
}

type Password struct {
	Scheme     string `yaml:"scheme" env:"CRM_PASSWORD_SCHEME"`
	BcryptCost int    `yaml:"bcrypt_cost" env:"CRM_PASSWORD_BCRYPT_COST"`
}

// Default returns the configuration used when neither a file nor the
// environment say otherwise.
func Default() App {
	return App{
		Database: Database{
			Driver: DriverSQLite,
			Path:   "crm.db",
		},
		Log: Log{
			Level: "warn",
		},
		Password: Password{
			Scheme: password.SchemeSHA256,
		},
		Output: OutputTable,
	}
}

// NewApp layers defaults, the YAML file at path (skipped when missing) and
// CRM_* environment variables, in that order. The result is not validated
// so callers can apply flag overrides first.
func NewApp(path string) (App, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return App{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *App) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// empty or comment-only file
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// LogLevel parses Log.Level.
func (a App) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(a.Log.Level))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log level: %w", errInvalidConfig, err)
	}
	return level, nil
}

func (a App) Validate() error {
	switch a.Database.Driver {
	case DriverSQLite:
		if strings.TrimSpace(a.Database.Path) == "" {
			return fmt.Errorf("%w: database.path is required for the sqlite driver", errInvalidConfig)
		}
	case DriverPostgres, DriverMySQL:
		if strings.TrimSpace(a.Database.DSN) == "" {
			return fmt.Errorf("%w: database.dsn is required for the %s driver", errInvalidConfig, a.Database.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown database.driver %q", errInvalidConfig, a.Database.Driver)
	}

	if _, err := a.LogLevel(); err != nil {
		return err
	}

	switch a.Password.Scheme {
	case password.SchemeSHA256, password.SchemeBcrypt:
	default:
		return fmt.Errorf("%w: unknown password.scheme %q", errInvalidConfig, a.Password.Scheme)
	}
	if a.Password.BcryptCost < 0 {
		return fmt.Errorf("%w: password.bcrypt_cost must be non-negative, got %d", errInvalidConfig, a.Password.BcryptCost)
	}

	switch a.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output %q", errInvalidConfig, a.Output)
	}

	return nil
}
