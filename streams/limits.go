package streams

import (
	"math"

	"github.com/pkg/errors"
)

// NewDeadband returns a stateless filter that zeroes any sample within
// halfWidth of zero and passes everything else through. Joystick axes rarely
// rest at exactly zero; a small deadband keeps the robot still.
func NewDeadband(halfWidth float64) (Filter, error) {
	if halfWidth < 0 {
		return nil, errors.Errorf("deadband half-width must be non-negative, got %v", halfWidth)
	}
	return FilterFunc(func(sample float64) float64 {
		if math.Abs(sample) <= halfWidth {
			return 0
		}
		return sample
	}), nil
}

// RateLimit clamps how far the output may move per call, limiting the slew
// rate of whatever the output drives.
type RateLimit struct {
	maxStep float64
	last    float64
}

// NewRateLimit returns a rate limiter allowing at most maxStep of change per
// sample, starting from zero.
func NewRateLimit(maxStep float64) (*RateLimit, error) {
	if maxStep <= 0 {
		return nil, errors.Errorf("rate limit step must be positive, got %v", maxStep)
	}
	return &RateLimit{maxStep: maxStep}, nil
}

// Apply moves the output toward the sample by at most the configured step.
func (r *RateLimit) Apply(sample float64) float64 {
	delta := sample - r.last
	if delta > r.maxStep {
		delta = r.maxStep
	} else if delta < -r.maxStep {
		delta = -r.maxStep
	}
	r.last += delta
	return r.last
}

// Reset returns the output to zero.
func (r *RateLimit) Reset() {
	r.last = 0
}
