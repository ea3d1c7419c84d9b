package streams

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestExpMovingAverageValidation(t *testing.T) {
	_, err := NewExpMovingAverage(1.0)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewExpMovingAverage(0.5)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewExpMovingAverage(-4)
	test.That(t, err, test.ShouldNotBeNil)

	ema, err := NewExpMovingAverage(1.0000001)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ema, test.ShouldNotBeNil)
}

func TestExpMovingAverageStepResponse(t *testing.T) {
	ema, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)

	// Each step halves the remaining error.
	test.That(t, ema.Apply(10.0), test.ShouldEqual, 5.0)
	test.That(t, ema.Apply(10.0), test.ShouldEqual, 7.5)
	test.That(t, ema.Apply(10.0), test.ShouldEqual, 8.75)
}

func TestExpMovingAverageConvergence(t *testing.T) {
	const target = 42.0
	ema, err := NewExpMovingAverage(8.0)
	test.That(t, err, test.ShouldBeNil)

	prev := 0.0
	for i := 0; i < 500; i++ {
		out := ema.Apply(target)
		test.That(t, out, test.ShouldBeGreaterThanOrEqualTo, prev)
		test.That(t, out, test.ShouldBeLessThanOrEqualTo, target)
		prev = out
	}
	test.That(t, prev, test.ShouldAlmostEqual, target, 1e-9)
}

func TestExpMovingAverageFixedPoint(t *testing.T) {
	ema, err := NewSeededExpMovingAverage(3.0, 7.0)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, ema.Apply(7.0), test.ShouldEqual, 7.0)
	test.That(t, ema.Apply(7.0), test.ShouldEqual, 7.0)
}

func TestExpMovingAverageSeedAndReset(t *testing.T) {
	ema, err := NewSeededExpMovingAverage(2.0, 4.0)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, ema.Apply(0.0), test.ShouldEqual, 2.0)
	ema.Reset()
	test.That(t, ema.Apply(0.0), test.ShouldEqual, 2.0)
}

func TestExpMovingAverageInstanceIndependence(t *testing.T) {
	a, err := NewExpMovingAverage(5.0)
	test.That(t, err, test.ShouldBeNil)
	b, err := NewExpMovingAverage(5.0)
	test.That(t, err, test.ShouldBeNil)

	inputs := []float64{1, -3, 8, 8, 0.5, 100, -0.25}
	for _, in := range inputs {
		test.That(t, a.Apply(in), test.ShouldEqual, b.Apply(in))
	}

	// Mutating one must not affect the other.
	a.Apply(1000)
	test.That(t, a.Apply(0), test.ShouldNotEqual, b.Apply(0))
}

func TestChainValidation(t *testing.T) {
	_, err := NewChain()
	test.That(t, err, test.ShouldNotBeNil)

	ema, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)
	_, err = NewChain(ema, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestChainMatchesManualStaging(t *testing.T) {
	f1, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)
	f2, err := NewExpMovingAverage(4.0)
	test.That(t, err, test.ShouldBeNil)

	m1, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)
	m2, err := NewExpMovingAverage(4.0)
	test.That(t, err, test.ShouldBeNil)

	chained, err := NewChain(f1, f2)
	test.That(t, err, test.ShouldBeNil)

	for _, in := range []float64{10, 10, -5, 2.5, 0, 33} {
		test.That(t, chained.Apply(in), test.ShouldEqual, m2.Apply(m1.Apply(in)))
	}
}

func TestChainReset(t *testing.T) {
	ema, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)
	chained, err := NewChain(ema, FilterFunc(func(s float64) float64 { return s * 2 }))
	test.That(t, err, test.ShouldBeNil)

	test.That(t, chained.Apply(10), test.ShouldEqual, 10.0)
	chained.(Resettable).Reset()
	test.That(t, chained.Apply(10), test.ShouldEqual, 10.0)
}

func TestMovingAverage(t *testing.T) {
	_, err := NewMovingAverage(0)
	test.That(t, err, test.ShouldNotBeNil)

	ma, err := NewMovingAverage(3)
	test.That(t, err, test.ShouldBeNil)

	// Warmup averages only what has been seen.
	test.That(t, ma.Apply(3), test.ShouldEqual, 3.0)
	test.That(t, ma.Apply(5), test.ShouldEqual, 4.0)
	test.That(t, ma.Apply(7), test.ShouldEqual, 5.0)
	// Window full: the oldest sample falls out.
	test.That(t, ma.Apply(9), test.ShouldEqual, 7.0)

	ma.Reset()
	test.That(t, ma.Apply(1), test.ShouldEqual, 1.0)
}

func TestMedian(t *testing.T) {
	_, err := NewMedian(-1)
	test.That(t, err, test.ShouldNotBeNil)

	med, err := NewMedian(3)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, med.Apply(1), test.ShouldEqual, 1.0)
	test.That(t, med.Apply(100), test.ShouldEqual, 50.5)
	test.That(t, med.Apply(2), test.ShouldEqual, 2.0)
	// A single spike never becomes the output.
	test.That(t, med.Apply(3), test.ShouldEqual, 3.0)
}

func TestDeadband(t *testing.T) {
	_, err := NewDeadband(-0.1)
	test.That(t, err, test.ShouldNotBeNil)

	db, err := NewDeadband(0.05)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, db.Apply(0.01), test.ShouldEqual, 0.0)
	test.That(t, db.Apply(-0.05), test.ShouldEqual, 0.0)
	test.That(t, db.Apply(0.2), test.ShouldEqual, 0.2)
	test.That(t, db.Apply(-0.7), test.ShouldEqual, -0.7)
}

func TestRateLimit(t *testing.T) {
	_, err := NewRateLimit(0)
	test.That(t, err, test.ShouldNotBeNil)

	rl, err := NewRateLimit(0.5)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, rl.Apply(2), test.ShouldEqual, 0.5)
	test.That(t, rl.Apply(2), test.ShouldEqual, 1.0)
	test.That(t, rl.Apply(-2), test.ShouldEqual, 0.5)
	test.That(t, rl.Apply(0.6), test.ShouldEqual, 0.6)

	rl.Reset()
	test.That(t, rl.Apply(0.1), test.ShouldEqual, 0.1)
}

func TestNonFiniteInputsPropagate(t *testing.T) {
	ema, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, math.IsNaN(ema.Apply(math.NaN())), test.ShouldBeTrue)
}
