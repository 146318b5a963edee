// Package core defines the shared language of querie.
//
// This package contains:
//   - The typed result model (ValueKind, Cell, Row, ResultSet)
//   - Gateway connection configuration (GatewayConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
