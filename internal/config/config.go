// Package config holds World's opt-in, in-process configuration. Nothing in
// this package is read implicitly from disk or the environment; a host
// process that wants file-backed configuration calls LoadYAML/LoadJSON
// itself and hands the result to entitycore.NewWorld.
package config

import "time"

// WorldConfig controls archetype-map sharding, parallel-query concurrency,
// logging, and how long World.Close waits for the logger to flush. The
// core's own storage and concurrency behavior does not depend on any of
// these values; they tune throughput, verbosity, and shutdown.
type WorldConfig struct {
	ArchetypeShards int           `json:"archetype_shards" yaml:"archetype_shards"`
	WorkerCount     int           `json:"worker_count" yaml:"worker_count"`
	LogLevel        string        `json:"log_level" yaml:"log_level"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DefaultWorldConfig returns the configuration NewWorld uses when no override
// is supplied.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		ArchetypeShards: 16,
		WorkerCount:     8,
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}
}
