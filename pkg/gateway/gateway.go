// Package gateway defines the query gateway contract for querie.
//
// A gateway executes one query with positional arguments and returns the
// rows as a core.ResultSet, or fails with a *QueryError. Concrete backends
// live in pkg/gateways/ subdirectories and register themselves here.
package gateway

import (
	"context"

	"github.com/leapstack-labs/querie/pkg/core"
)

// Config is an alias for core.GatewayConfig.
type Config = core.GatewayConfig

// Gateway executes queries against a backend.
type Gateway interface {
	// Execute runs query with positional args and returns its rows.
	// Failures are reported as *QueryError.
	Execute(ctx context.Context, query string, args ...any) (core.ResultSet, error)
}

// Backend is a Gateway with a connection lifecycle.
type Backend interface {
	Gateway

	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close releases the connection.
	Close() error

	// Name returns the registered backend name.
	Name() string
}

// GatewayFunc adapts a function to the Gateway interface.
type GatewayFunc func(ctx context.Context, query string, args ...any) (core.ResultSet, error)

// Execute calls f.
func (f GatewayFunc) Execute(ctx context.Context, query string, args ...any) (core.ResultSet, error) {
	return f(ctx, query, args...)
}
