// Package postgres provides a PostgreSQL query gateway for querie.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/leapstack-labs/querie/pkg/core"
	"github.com/leapstack-labs/querie/pkg/gateway"
)

// Gateway implements gateway.Backend on a pgx connection pool.
type Gateway struct {
	pool   *pgxpool.Pool
	cfg    gateway.Config
	logger *slog.Logger
}

// New creates a new PostgreSQL gateway.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{logger: logger}
}

// Name returns the registered backend name.
func (g *Gateway) Name() string {
	return "postgres"
}

// Connect establishes the pool and verifies the server is reachable.
func (g *Gateway) Connect(ctx context.Context, cfg gateway.Config) error {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = buildPostgresDSN(cfg)
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return gateway.NewConnectionError(fmt.Errorf("invalid postgres connection string: %w", err))
	}

	g.logger.Debug("connecting to postgres",
		slog.String("host", poolCfg.ConnConfig.Host),
		slog.String("database", poolCfg.ConnConfig.Database))

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return gateway.NewConnectionError(fmt.Errorf("failed to open postgres connection: %w", err))
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return gateway.NewConnectionError(fmt.Errorf("failed to ping postgres: %w", err))
	}

	g.pool = pool
	g.cfg = cfg
	return nil
}

// Close closes every pooled connection.
func (g *Gateway) Close() error {
	if g.pool != nil {
		g.logger.Debug("closing postgres pool")
		g.pool.Close()
		g.pool = nil
	}
	return nil
}

// Execute runs query and stringifies every column by its type OID.
func (g *Gateway) Execute(ctx context.Context, query string, args ...any) (core.ResultSet, error) {
	if g.pool == nil {
		return core.ResultSet{}, gateway.NewConnectionError(errors.New("database connection not established"))
	}

	rows, err := g.pool.Query(ctx, query, args...)
	if err != nil {
		return core.ResultSet{}, classifyError(err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()

	var set core.ResultSet
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return core.ResultSet{}, classifyError(err)
		}

		row := make(core.Row, len(fields))
		for i, fd := range fields {
			row[i] = cellFor(fd.Name, fd.DataTypeOID, values[i])
		}
		set.Rows = append(set.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return core.ResultSet{}, classifyError(err)
	}
	return set, nil
}

// classifyError maps pgx failures to gateway categories.
// Server-reported errors are query failures; errors raised before anything
// reached the server are connection failures.
func classifyError(err error) *gateway.QueryError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return gateway.NewQueryError(err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.SafeToRetry(err) {
		return gateway.NewConnectionError(err)
	}

	return gateway.ClassifySQLError(err)
}

// buildPostgresDSN constructs a PostgreSQL connection string.
func buildPostgresDSN(cfg gateway.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	sslmode := "disable"
	if cfg.Options != nil {
		if mode, ok := cfg.Options["sslmode"]; ok {
			sslmode = mode
		}
	}

	parts := []string{
		fmt.Sprintf("host=%s", host),
		fmt.Sprintf("port=%d", port),
	}
	if cfg.Database != "" {
		parts = append(parts, fmt.Sprintf("dbname=%s", cfg.Database))
	}
	parts = append(parts, fmt.Sprintf("sslmode=%s", sslmode))

	if cfg.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", cfg.Username))
	}
	if cfg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", cfg.Password))
	}

	return strings.Join(parts, " ")
}

// Ensure Gateway implements gateway.Backend interface
var _ gateway.Backend = (*Gateway)(nil)
