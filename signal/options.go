package signal

import "math/rand"

// Generator defaults.
const (
	defAmp   = 1.0     // amplitude (> 0)
	defFreq  = 0.03125 // cycles per sample (> 0); period 32
	defSigma = 0.0     // Gaussian noise sigma (≥ 0); 0 disables noise
	defTrend = 0.0     // linear trend increment per sample
	defDuty  = 0.5     // rectangular pulse duty cycle in [0,1]
)

// config holds the resolved knobs for one generator call.
type config struct {
	amp   float64
	freq  float64
	sigma float64
	trend float64
	duty  float64
	rng   *rand.Rand
}

// Option tweaks a generator parameter.
type Option func(*config)

// WithAmplitude sets the peak amplitude. Must be positive.
func WithAmplitude(a float64) Option { return func(c *config) { c.amp = a } }

// WithFrequency sets the base frequency in cycles per sample.
// Must be positive.
func WithFrequency(f float64) Option { return func(c *config) { c.freq = f } }

// WithNoise sets the sigma of additive Gaussian noise. Zero disables it.
func WithNoise(sigma float64) Option { return func(c *config) { c.sigma = sigma } }

// WithTrend adds a linear drift of t per sample.
func WithTrend(t float64) Option { return func(c *config) { c.trend = t } }

// WithDuty sets the rectangular duty cycle for Pulse, in [0,1].
func WithDuty(d float64) Option { return func(c *config) { c.duty = d } }

// WithRand supplies a shared random source, overriding the seed
// argument. Useful when several generators must draw from one stream.
func WithRand(r *rand.Rand) Option { return func(c *config) { c.rng = r } }

// newConfig resolves defaults, applies opts, and picks the RNG:
// a caller-supplied stream wins over the per-call seed.
func newConfig(seed int64, opts ...Option) config {
	c := config{amp: defAmp, freq: defFreq, sigma: defSigma, trend: defTrend, duty: defDuty}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(seed))
	}

	return c
}

// valid reports whether the resolved parameters make sense.
func (c config) valid() bool {
	return c.amp > 0 && c.freq > 0 && c.sigma >= 0 && c.duty >= 0 && c.duty <= 1
}
