package streams

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestSmootherValidation(t *testing.T) {
	logger := golog.NewTestLogger(t)
	ema, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)
	source := SourceFunc(func(ctx context.Context) (float64, error) { return 0, nil })

	_, err = NewSmoother(nil, ema, 100, logger)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewSmoother(source, nil, 100, logger)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewSmoother(source, ema, 0, logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSmootherConverges(t *testing.T) {
	logger := golog.NewTestLogger(t)
	ema, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)

	source := SourceFunc(func(ctx context.Context) (float64, error) { return 10, nil })
	mock := clock.NewMock()
	smoother, err := newSmoother(source, ema, 100, mock, logger)
	test.That(t, err, test.ShouldBeNil)

	smoother.Start()
	for i := 0; i < 200; i++ {
		mock.Add(10 * time.Millisecond)
		time.Sleep(time.Millisecond)
		if smoother.Value() > 9.99 {
			break
		}
	}
	test.That(t, smoother.Value(), test.ShouldBeGreaterThan, 9.0)
	test.That(t, smoother.LastError(), test.ShouldBeNil)
	test.That(t, smoother.Close(), test.ShouldBeNil)
}

func TestSmootherSurfacesReadErrors(t *testing.T) {
	logger := golog.NewTestLogger(t)
	ema, err := NewExpMovingAverage(2.0)
	test.That(t, err, test.ShouldBeNil)

	readErr := errors.New("device unplugged")
	source := SourceFunc(func(ctx context.Context) (float64, error) { return 0, readErr })
	mock := clock.NewMock()
	smoother, err := newSmoother(source, ema, 100, mock, logger)
	test.That(t, err, test.ShouldBeNil)

	smoother.Start()
	for i := 0; i < 200; i++ {
		mock.Add(10 * time.Millisecond)
		time.Sleep(time.Millisecond)
		if smoother.LastError() != nil {
			break
		}
	}
	test.That(t, smoother.LastError(), test.ShouldBeError, readErr)
	test.That(t, smoother.Close(), test.ShouldBeNil)
}
