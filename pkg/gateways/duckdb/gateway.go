// Package duckdb provides a DuckDB query gateway for querie.
package duckdb

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/querie/pkg/gateway"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Gateway implements gateway.Backend for DuckDB.
type Gateway struct {
	gateway.BaseSQLGateway
}

// New creates a new DuckDB gateway.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		BaseSQLGateway: gateway.BaseSQLGateway{Logger: logger},
	}
}

// Name returns the registered backend name.
func (g *Gateway) Name() string {
	return "duckdb"
}

// Connect opens a DuckDB database.
// An empty path (or ":memory:") opens an in-memory database.
func (g *Gateway) Connect(ctx context.Context, cfg gateway.Config) error {
	path := cfg.Path
	if path == "" {
		path = cfg.Database
	}
	if path == ":memory:" {
		path = ""
	}

	g.Logger.Debug("opening duckdb database", slog.String("path", path))

	db, err := gateway.OpenSQL(ctx, "duckdb", path)
	if err != nil {
		return err
	}

	g.DB = db
	g.Cfg = cfg
	return nil
}

func init() {
	gateway.Register("duckdb", func(logger *slog.Logger) gateway.Backend { return New(logger) })
}

// Ensure Gateway implements gateway.Backend interface
var _ gateway.Backend = (*Gateway)(nil)
