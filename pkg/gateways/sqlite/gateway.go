// Package sqlite provides a SQLite query gateway for querie, backed by the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/querie/pkg/gateway"

	// sqlite driver
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Gateway implements gateway.Backend for SQLite.
type Gateway struct {
	gateway.BaseSQLGateway
}

// New creates a new SQLite gateway.
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
	return "sqlite"
}

// Connect opens the database file named by cfg.Path, cfg.Database, or cfg.DSN
// (first non-empty). An empty path opens an in-memory database.
func (g *Gateway) Connect(ctx context.Context, cfg gateway.Config) error {
	path := firstNonEmpty(cfg.DSN, cfg.Path, cfg.Database)
	if path == "" {
		path = MemoryPath
	}

	g.Logger.Debug("opening sqlite database", slog.String("path", path))

	db, err := gateway.OpenSQL(ctx, "sqlite", path)
	if err != nil {
		return err
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	g.DB = db
	g.Cfg = cfg
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	gateway.Register("sqlite", func(logger *slog.Logger) gateway.Backend { return New(logger) })
}

// Ensure Gateway implements gateway.Backend interface
var _ gateway.Backend = (*Gateway)(nil)
