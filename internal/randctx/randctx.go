// Package randctx owns every source of randomness used by a generation run.
//
// A Context is constructed from a single integer seed and passed explicitly
// to each generator. Two Contexts built from the same seed and reference time
// and driven through the same call sequence produce identical outputs, which
// makes whole runs reproducible. Nothing in this package touches package-level
// random state.
package randctx

import (
	"math"
	"math/rand/v2"
	"time"
)

// Context derives all random draws for one generation run from one seed.
// It must not be shared between concurrent runs.
type Context struct {
	rng        *rand.Rand
	now        time.Time
	usedEmails map[string]struct{}
}

// Option adjusts Context construction.
type Option func(*Context)

// WithNow pins the reference time that TimeWithin offsets from.
// Tests use this to make timestamps reproducible across runs.
func WithNow(now time.Time) Option {
	return func(c *Context) { c.now = now.UTC() }
}

// New builds a Context from seed. Construction cannot fail; negative seeds
// are valid and simply select a different deterministic stream.
func New(seed int64, opts ...Option) *Context {
	c := &Context{
		// Per-instance source, never the global one, so two runs with
		// independent Contexts cannot perturb each other's streams.
		rng:        rand.New(rand.NewPCG(uint64(seed), uint64(seed)*0x9E3779B97F4A7C15+1)),
		now:        time.Now().UTC(),
		usedEmails: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the run's reference time.
func (c *Context) Now() time.Time { return c.now }

// Float64 returns a uniform float in [0,1).
func (c *Context) Float64() float64 { return c.rng.Float64() }

// IntN returns a uniform int in [0,n).
func (c *Context) IntN(n int) int { return c.rng.IntN(n) }

// NormFloat64 returns a standard-normal draw.
func (c *Context) NormFloat64() float64 { return c.rng.NormFloat64() }

// Bool returns true with probability p.
func (c *Context) Bool(p float64) bool { return c.rng.Float64() < p }

// Pick returns a uniform element of pool. pool must be non-empty.
func (c *Context) Pick(pool []string) string {
	return pool[c.rng.IntN(len(pool))]
}

// WeightedIndex returns an index into weights with selection probability
// proportional to each weight. Draws are independent, so repeated calls
// implement weighted sampling with replacement. weights must be non-empty
// with a positive sum.
func (c *Context) WeightedIndex(weights []float64) int {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	r := c.rng.Float64() * sum
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	// Floating-point underflow on the cumulative scan; the last
	// positive-weight index is the correct fallback.
	return len(weights) - 1
}

// Normal returns a draw from Normal(mean, sd).
func (c *Context) Normal(mean, sd float64) float64 {
	return mean + sd*c.rng.NormFloat64()
}

// LogNormal returns a draw whose logarithm is Normal(mu, sigma).
// The result is always > 0.
func (c *Context) LogNormal(mu, sigma float64) float64 {
	return math.Exp(mu + sigma*c.rng.NormFloat64())
}

// Geometric returns the trial count of the first success with per-trial
// probability p, so the support is {1, 2, ...}.
func (c *Context) Geometric(p float64) int {
	k := 1
	for c.rng.Float64() >= p {
		k++
	}
	return k
}

// TimeWithin returns a timestamp uniformly distributed over the trailing
// days before the run's reference time, at second granularity.
func (c *Context) TimeWithin(days int) time.Time {
	span := int64(days) * 24 * 60 * 60
	return c.now.Add(-time.Duration(c.rng.Int64N(span)) * time.Second)
}
