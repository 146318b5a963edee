// Package main provides the querie interactive query console.
package main

import (
	"os"

	"github.com/leapstack-labs/querie/internal/cli"

	// Gateways register themselves via init().
	_ "github.com/leapstack-labs/querie/pkg/gateways/duckdb"
	_ "github.com/leapstack-labs/querie/pkg/gateways/postgres"
	_ "github.com/leapstack-labs/querie/pkg/gateways/sqlite"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
