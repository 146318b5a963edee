package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/querie/pkg/core"
)

// errNotConnected is reported when Execute runs before Connect.
var errNotConnected = errors.New("database connection not established")

// BaseSQLGateway provides common database/sql functionality for backends.
// Embed this struct in concrete backends to get standard Close and
// Execute implementations.
type BaseSQLGateway struct {
	DB     *sql.DB
	Cfg    core.GatewayConfig
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLGateway) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLGateway) IsConnected() bool {
	return b.DB != nil
}

// Execute runs query and converts every row into cells.
func (b *BaseSQLGateway) Execute(ctx context.Context, query string, args ...any) (core.ResultSet, error) {
	if b.DB == nil {
		return core.ResultSet{}, NewConnectionError(errNotConnected)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return core.ResultSet{}, ClassifySQLError(err)
	}
	defer func() { _ = rows.Close() }()

	return ScanRows(rows)
}

// OpenSQL opens and pings a database/sql handle, reporting failures as
// connection errors.
func OpenSQL(ctx context.Context, driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("failed to open %s connection: %w", driverName, err))
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, NewConnectionError(fmt.Errorf("failed to ping %s: %w", driverName, err))
	}
	return db, nil
}

// ScanRows drains rows into a result set.
func ScanRows(rows *sql.Rows) (core.ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return core.ResultSet{}, ClassifySQLError(err)
	}

	typeNames := make([]string, len(cols))
	if types, err := rows.ColumnTypes(); err == nil {
		for i, ct := range types {
			if i < len(typeNames) {
				typeNames[i] = ct.DatabaseTypeName()
			}
		}
	}

	var set core.ResultSet
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return core.ResultSet{}, ClassifySQLError(err)
		}

		row := make(core.Row, len(cols))
		for i, col := range cols {
			row[i] = CellFromValue(col, typeNames[i], values[i])
		}
		set.Rows = append(set.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return core.ResultSet{}, ClassifySQLError(err)
	}
	return set, nil
}
