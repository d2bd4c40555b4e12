// Package signal generates deterministic 1-D test signals — Sine,
// Pulse, RandomWalk — for exercising windowed code.
//
// Every generator takes a length, a seed, and functional options
// (amplitude, frequency, Gaussian noise, linear trend). The same seed
// always yields the same samples, so tests and benchmarks stay
// reproducible. Invalid requests (n < 1, nonsensical parameters)
// return nil rather than panic.
package signal
