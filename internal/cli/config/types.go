// Package config provides configuration management for the querie CLI.
//
// Values are layered with koanf: defaults, then querie.yaml, then QUERIE_
// environment variables, then command-line flags.
package config

import (
	"maps"
	"time"

	"github.com/leapstack-labs/querie/pkg/gateway"
)

// TargetConfig describes the backend the console queries.
type TargetConfig struct {
	Type     string            `koanf:"type"`
	DSN      string            `koanf:"dsn"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	Database string            `koanf:"database"`
	User     string            `koanf:"user"`
	Password string            `koanf:"password"`
	Options  map[string]string `koanf:"options"`
}

// LogConfig controls the diagnostic log. The terminal belongs to the
// console, so logs are only written when File is set.
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// Config holds all CLI configuration options.
type Config struct {
	Target       *TargetConfig `koanf:"target"`
	PollInterval time.Duration `koanf:"poll_interval"`
	NoColor      bool          `koanf:"no_color"`
	Log          LogConfig     `koanf:"log"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultTargetType   = "postgres"
	DefaultPostgresDSN  = "host=localhost user=postgres"
	DefaultPostgresPort = 5432
	DefaultPollInterval = 50 * time.Millisecond
	DefaultLogLevel     = "info"
)

// GatewayConfig converts the target into the gateway connection config.
func (t *TargetConfig) GatewayConfig() gateway.Config {
	if t == nil {
		return gateway.Config{}
	}
	return gateway.Config{
		Type:     t.Type,
		DSN:      t.DSN,
		Path:     t.Database,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Options:  maps.Clone(t.Options),
	}
}

// ApplyTargetDefaults fills in type-specific defaults. A postgres target
// with neither DSN nor host falls back to the local default DSN.
func ApplyTargetDefaults(t *TargetConfig) {
	if t == nil {
		return
	}
	if t.Type == "" {
		t.Type = DefaultTargetType
	}
	if t.Type == "postgres" {
		if t.DSN == "" && t.Host == "" {
			t.DSN = DefaultPostgresDSN
		}
		if t.Port == 0 {
			t.Port = DefaultPostgresPort
		}
	}
}
