package core

// GatewayConfig holds configuration for connecting a query gateway to a backend.
type GatewayConfig struct {
	Type     string
	DSN      string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string
}
