package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/querie/pkg/gateway"
)

// Validate checks if the target configuration is valid.
// It uses the gateway registry to determine which backend types are available.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}

	if !gateway.IsRegistered(strings.ToLower(t.Type)) {
		return &gateway.UnknownGatewayError{
			Type:      t.Type,
			Available: gateway.List(),
		}
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Target == nil {
		return fmt.Errorf("target is required")
	}
	if err := c.Target.Validate(); err != nil {
		return fmt.Errorf("invalid target configuration: %w", err)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: use debug, info, warn or error", name)
	}
	return level, nil
}
