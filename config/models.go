package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	GitHub    GitHubConfig    `mapstructure:"github"`
	Sheets    SheetsConfig    `mapstructure:"sheets"`
	Checklist ChecklistConfig `mapstructure:"checklist"`
	Sync      SyncConfig      `mapstructure:"sync"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
		return errors.New("postgres credentials are required")
	}
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" {
		return errors.New("github.owner and github.repo are required")
	}
	if c.Sheets.SpreadsheetID == "" {
		return errors.New("sheets.spreadsheet_id is required")
	}
	switch c.Checklist.Scheme {
	case "PLAIN":
	case "PER_PARTICIPANT_FENCE":
		if c.Checklist.RosterPath == "" {
			return errors.New("checklist.roster_path is required for the fenced scheme")
		}
	default:
		return fmt.Errorf("checklist.scheme must be PLAIN or PER_PARTICIPANT_FENCE, got %q", c.Checklist.Scheme)
	}
	if c.Sync.FetchWindow <= 0 {
		return errors.New("sync.fetch_window must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// GitHubConfig describes the pull-request host connection.
type GitHubConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Token          string        `mapstructure:"token"`
	Owner          string        `mapstructure:"owner"`
	Repo           string        `mapstructure:"repo"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// SheetsConfig describes the spreadsheet destination.
type SheetsConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Token          string        `mapstructure:"token"`
	SpreadsheetID  string        `mapstructure:"spreadsheet_id"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// ChecklistConfig selects the markup scheme and its delimiters.
type ChecklistConfig struct {
	Scheme      string `mapstructure:"scheme"`
	StartMarker string `mapstructure:"start_marker"`
	EndMarker   string `mapstructure:"end_marker"`
	FencePrefix string `mapstructure:"fence_prefix"`
	RosterPath  string `mapstructure:"roster_path"`
}

// SyncConfig tunes the run pipeline.
type SyncConfig struct {
	FetchWindow int    `mapstructure:"fetch_window"`
	LinkEnabled bool   `mapstructure:"link_enabled"`
	LinkLabel   string `mapstructure:"link_label"`
	StartCell   string `mapstructure:"start_cell"`
}
