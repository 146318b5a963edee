// Package postgres provides a PostgreSQL query gateway for querie.
//
// This file registers the PostgreSQL gateway with the gateway registry.
// Import this package with a blank identifier to register it:
//
//	import _ "github.com/leapstack-labs/querie/pkg/gateways/postgres"
package postgres

import (
	"log/slog"

	"github.com/leapstack-labs/querie/pkg/gateway"
)

func init() {
	gateway.Register("postgres", func(logger *slog.Logger) gateway.Backend { return New(logger) })
}
