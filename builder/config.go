package builder

import "math/rand"

// WeightFn produces an edge weight given an optional *rand.Rand source; it
// must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// Config aggregates every knob a topology constructor reads. It is
// resolved once per call from the supplied Options and passed by value.
type Config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes a Config before a topology is built.
type Option func(*Config)

// WithSeed seeds a fresh, deterministic RNG for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG, letting callers share one stream
// across several builder calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *Config) { c.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *Config) { c.weightFn = fn }
}

// ConstantWeight returns a WeightFn that always yields w, ignoring the RNG.
func ConstantWeight(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight returns a WeightFn sampling uniformly from [min, max).
// Panics if max < min. Falls back to min when called with a nil RNG.
func UniformWeight(min, max float64) WeightFn {
	if max < min {
		panic("builder: UniformWeight(max<min)")
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

const defaultEdgeWeight = 1.0

func newConfig(opts ...Option) Config {
	cfg := Config{
		rng:      nil,
		weightFn: ConstantWeight(defaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
