// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// config.go - internal configuration, options and deterministic defaults.
//
// Deterministic defaults:
//   • src        = NewRandomSource(DefaultSeed)
//   • undirected = false (ordered pairs, directed result)
//
// Option constructors validate eagerly and panic on nil input; Generate itself
// only ever returns sentinel errors.

package builder

// builderConfig aggregates every knob consumed by Generate.
type builderConfig struct {
	// Randomness for Bernoulli trials and cost draws.
	src RandomSource
	// When set, sample unordered pairs and mirror each edge.
	undirected bool
}

// BuilderOption mutates a builderConfig before generation.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = NewRandomSource(DefaultSeed)
	}

	return cfg
}

// WithSeed installs a math/rand source seeded with seed (0 ⇒ DefaultSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.src = NewRandomSource(seed)
	}
}

// WithSource installs a caller-supplied RandomSource. Panics on nil.
func WithSource(src RandomSource) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}

	return func(c *builderConfig) {
		c.src = src
	}
}

// WithUndirected makes Generate produce a symmetric graph.
func WithUndirected() BuilderOption {
	return func(c *builderConfig) {
		c.undirected = true
	}
}
