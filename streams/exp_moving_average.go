package streams

import "github.com/pkg/errors"

// ExpMovingAverage is a single pole IIR low-pass filter. Each output moves
// the previous output toward the input by 1/weight of the remaining
// difference, so larger weights adapt more slowly.
//
// The filter is not time aware: calling it at a different rate changes the
// effective time constant proportionally.
type ExpMovingAverage struct {
	weight float64
	seed   float64
	last   float64
}

// NewExpMovingAverage returns an exponential moving average with the given
// weight, starting from zero. The weight must be greater than 1; a weight of
// exactly 1 would replace the state with the input on every call, degenerating
// the filter to a pass-through.
func NewExpMovingAverage(weight float64) (*ExpMovingAverage, error) {
	return NewSeededExpMovingAverage(weight, 0)
}

// NewSeededExpMovingAverage is like NewExpMovingAverage but starts the
// output at seed instead of zero.
func NewSeededExpMovingAverage(weight, seed float64) (*ExpMovingAverage, error) {
	if weight <= 1.0 {
		return nil, errors.Errorf("exponential moving average weight must be > 1, got %v", weight)
	}
	return &ExpMovingAverage{weight: weight, seed: seed, last: seed}, nil
}

// Apply feeds the filter the next sample and returns the new average.
func (e *ExpMovingAverage) Apply(sample float64) float64 {
	e.last += (sample - e.last) / e.weight
	return e.last
}

// Reset restores the output to the seed value.
func (e *ExpMovingAverage) Reset() {
	e.last = e.seed
}

// Weight returns the smoothing weight the filter was built with.
func (e *ExpMovingAverage) Weight() float64 {
	return e.weight
}
