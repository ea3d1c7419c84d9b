// Package streams implements small stateful filters over sampled float64
// signals, such as joystick axes or analog sensor readings.
//
// A filter instance belongs to a single control loop. None of the filters
// lock internally; callers sharing one instance across goroutines must
// serialize access themselves.
package streams

// A Filter consumes the next raw sample and returns the next filtered
// sample, updating internal state as a side effect.
type Filter interface {
	Apply(sample float64) float64
}

// FilterFunc adapts a stateless function to the Filter interface.
type FilterFunc func(sample float64) float64

// Apply calls f.
func (f FilterFunc) Apply(sample float64) float64 {
	return f(sample)
}

// Resettable is implemented by filters that can restore their initial state
// without being reconstructed.
type Resettable interface {
	Reset()
}
