package store

import "time"

// Config aggregates per-backend settings
type Config struct {
	AppName string

	PG PGConfig
}

// PGConfig configures postgres connectivity and query tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs, defaulted by openPG when zero
	ConnectRetries int           // default 6
	PingTimeout    time.Duration // default 5s
}
