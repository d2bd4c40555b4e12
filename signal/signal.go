package signal

import "math"

// Sine returns a length-n sinusoid: amp·sin(2π·freq·i), plus optional
// linear trend and Gaussian noise. Returns nil when n < 1 or the
// parameters fail validation.
//
// Complexity: O(n).
func Sine(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(seed, opts...)
	if !c.valid() {
		return nil
	}

	out := make([]float64, n)
	omega := 2 * math.Pi * c.freq
	for i := range out {
		out[i] = c.amp*math.Sin(omega*float64(i)) + c.trend*float64(i)
		if c.sigma > 0 {
			out[i] += c.sigma * c.rng.NormFloat64()
		}
	}

	return out
}

// Pulse returns a length-n rectangular pulse train: amp while the phase
// fraction is below the duty cycle, 0 otherwise, plus optional trend
// and noise. Nil on invalid input, same contract as Sine.
//
// Complexity: O(n).
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(seed, opts...)
	if !c.valid() {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		frac := math.Mod(float64(i)*c.freq, 1)
		if frac < c.duty {
			out[i] = c.amp
		}
		out[i] += c.trend * float64(i)
		if c.sigma > 0 {
			out[i] += c.sigma * c.rng.NormFloat64()
		}
	}

	return out
}

// RandomWalk returns a length-n Gaussian random walk with step scale
// amp, plus optional per-sample trend. WithNoise adds independent
// observation noise on top of the walk. Nil on invalid input.
//
// Complexity: O(n).
func RandomWalk(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(seed, opts...)
	if !c.valid() {
		return nil
	}

	out := make([]float64, n)
	var level float64
	for i := range out {
		level += c.amp * c.rng.NormFloat64()
		out[i] = level + c.trend*float64(i)
		if c.sigma > 0 {
			out[i] += c.sigma * c.rng.NormFloat64()
		}
	}

	return out
}
