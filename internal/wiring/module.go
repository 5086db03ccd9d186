// Package wiring is entitycore's composition root: the one place that knows
// how to construct a fully wired World from a config.WorldConfig.
//
// entitycore has a single construction path — NewWorld already wires the
// Extractors cache, the Archetypes map, and the Logger together directly —
// so there is nothing left for a generated dependency injector to do;
// ResolveConfig is a plain function, not a generated one.
package wiring

import "github.com/kestrelgame/entitycore/internal/config"

// ResolveConfig applies entitycore's one wiring decision — fall back to
// config.DefaultWorldConfig() for a zero-value cfg — so a host can inspect
// the config that will actually be used before calling entitycore.NewWorld.
func ResolveConfig(cfg config.WorldConfig) config.WorldConfig {
	if cfg == (config.WorldConfig{}) {
		return config.DefaultWorldConfig()
	}
	return cfg
}
