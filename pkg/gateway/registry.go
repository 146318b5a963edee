package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func(*slog.Logger) Backend)
)

// Register adds a backend factory to the registry.
// Called by backend implementations in their init() functions.
func Register(name string, factory func(*slog.Logger) Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = factory
}

// Get retrieves a backend factory by name.
func Get(name string) (func(*slog.Logger) Backend, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// NewBackend creates an unconnected backend based on config type.
// The logger parameter is passed to the backend constructor (nil uses discard logger).
func NewBackend(cfg Config, logger *slog.Logger) (Backend, error) {
	if cfg.Type == "" {
		return nil, fmt.Errorf("gateway type not specified")
	}

	factory, ok := Get(cfg.Type)
	if !ok {
		return nil, &UnknownGatewayError{
			Type:      cfg.Type,
			Available: List(),
		}
	}
	return factory(logger), nil
}

// Open creates a backend and connects it.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (Backend, error) {
	b, err := NewBackend(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := b.Connect(ctx, cfg); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all registered backend names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend type is registered.
func IsRegistered(name string) bool {
	_, ok := Get(name)
	return ok
}

// UnknownGatewayError is returned when an unknown backend type is requested.
type UnknownGatewayError struct {
	Type      string
	Available []string
}

func (e *UnknownGatewayError) Error() string {
	return fmt.Sprintf("unknown gateway type %q\nAvailable gateways: %v\nHint: Check target.type in querie.yaml", e.Type, e.Available)
}
