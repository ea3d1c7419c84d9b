package streams

import (
	"sort"

	"github.com/pkg/errors"
)

// MovingAverage is a windowed mean over the last N samples. Until the window
// fills it averages only the samples seen so far.
type MovingAverage struct {
	data  []float64
	pos   int
	count int
}

// NewMovingAverage returns a moving average over a window of the given size.
func NewMovingAverage(window int) (*MovingAverage, error) {
	if window <= 0 {
		return nil, errors.Errorf("moving average window must be positive, got %d", window)
	}
	return &MovingAverage{data: make([]float64, window)}, nil
}

// Apply adds the sample to the window and returns the current mean.
func (ma *MovingAverage) Apply(sample float64) float64 {
	ma.data[ma.pos] = sample
	ma.pos++
	if ma.pos >= len(ma.data) {
		ma.pos = 0
	}
	if ma.count < len(ma.data) {
		ma.count++
	}

	sum := 0.0
	for i := 0; i < ma.count; i++ {
		sum += ma.data[i]
	}
	return sum / float64(ma.count)
}

// Reset empties the window.
func (ma *MovingAverage) Reset() {
	ma.pos = 0
	ma.count = 0
}

// Median is a windowed median over the last N samples, useful for rejecting
// single-sample spikes that a mean would smear.
type Median struct {
	data  []float64
	pos   int
	count int
}

// NewMedian returns a median filter over a window of the given size.
func NewMedian(window int) (*Median, error) {
	if window <= 0 {
		return nil, errors.Errorf("median window must be positive, got %d", window)
	}
	return &Median{data: make([]float64, window)}, nil
}

// Apply adds the sample to the window and returns the median of the samples
// seen so far. Even-sized windows return the mean of the two middle values.
func (m *Median) Apply(sample float64) float64 {
	m.data[m.pos] = sample
	m.pos++
	if m.pos >= len(m.data) {
		m.pos = 0
	}
	if m.count < len(m.data) {
		m.count++
	}

	sorted := make([]float64, m.count)
	copy(sorted, m.data[:m.count])
	sort.Float64s(sorted)
	mid := m.count / 2
	if m.count%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Reset empties the window.
func (m *Median) Reset() {
	m.pos = 0
	m.count = 0
}
