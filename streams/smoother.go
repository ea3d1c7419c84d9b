package streams

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// A Source produces raw samples for a Smoother, such as an analog input or
// a joystick axis behind some transport.
type Source interface {
	Read(ctx context.Context) (float64, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (float64, error)

// Read calls f.
func (f SourceFunc) Read(ctx context.Context) (float64, error) {
	return f(ctx)
}

// A Smoother reads a Source at a fixed rate on a background goroutine,
// pushes every reading through a filter, and keeps the most recent filtered
// value available to the owning loop.
type Smoother struct {
	raw              Source
	filter           Filter
	samplesPerSecond int

	clk    clock.Clock
	logger golog.Logger

	mu        sync.RWMutex
	lastValue float64
	lastError atomic.Pointer[errValue]

	cancel                  context.CancelFunc
	activeBackgroundWorkers sync.WaitGroup
}

// An errValue is used to atomically store an error.
type errValue struct {
	present bool
	err     error
}

// NewSmoother wraps the given source in a smoother that samples it at the
// given rate through the given filter. Call Start to begin sampling.
func NewSmoother(raw Source, filter Filter, samplesPerSecond int, logger golog.Logger) (*Smoother, error) {
	return newSmoother(raw, filter, samplesPerSecond, clock.New(), logger)
}

func newSmoother(raw Source, filter Filter, samplesPerSecond int, clk clock.Clock, logger golog.Logger) (*Smoother, error) {
	if raw == nil {
		return nil, errors.New("smoother needs a source")
	}
	if filter == nil {
		return nil, errors.New("smoother needs a filter")
	}
	if samplesPerSecond <= 0 {
		return nil, errors.Errorf("samples per second must be positive, got %d", samplesPerSecond)
	}
	return &Smoother{
		raw:              raw,
		filter:           filter,
		samplesPerSecond: samplesPerSecond,
		clk:              clk,
		logger:           logger,
	}, nil
}

// Start begins the background sampling loop.
func (s *Smoother) Start() {
	cancelCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	interval := time.Second / time.Duration(s.samplesPerSecond)

	s.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer s.activeBackgroundWorkers.Done()
		ticker := s.clk.Ticker(interval)
		defer ticker.Stop()

		consecutiveErrors := 0
		var lastError error
		for {
			select {
			case <-cancelCtx.Done():
				return
			case <-ticker.C:
			}

			reading, err := s.raw.Read(cancelCtx)
			s.lastError.Store(&errValue{err != nil, err})
			if err != nil {
				if lastError != nil && err.Error() == lastError.Error() {
					consecutiveErrors++
				} else {
					s.logger.Infow("error reading sample", "error", err)
					consecutiveErrors = 0
				}
				// Don't spam the errors: only remind us of the problem every 10 seconds.
				if consecutiveErrors == s.samplesPerSecond*10 {
					s.logger.Errorw("unable to read source for 10 seconds", "error", err)
					consecutiveErrors = 0
				}
				lastError = err
				continue
			}
			lastError = nil
			consecutiveErrors = 0

			filtered := s.filter.Apply(reading)
			s.mu.Lock()
			s.lastValue = filtered
			s.mu.Unlock()
		}
	})
}

// Value returns the most recent filtered value.
func (s *Smoother) Value() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastValue
}

// LastError returns the error from the most recent read, if any.
func (s *Smoother) LastError() error {
	last := s.lastError.Load()
	if last == nil || !last.present {
		return nil
	}
	return last.err
}

// Close stops the sampling loop.
func (s *Smoother) Close() error {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.activeBackgroundWorkers.Wait()
	return nil
}
