package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// A Recorder samples a source at a fixed period on a background goroutine
// and appends each sample to a series.
type Recorder struct {
	series *Series
	source func() float64
	period time.Duration

	clk    clock.Clock
	logger golog.Logger

	cancel                  context.CancelFunc
	activeBackgroundWorkers sync.WaitGroup
}

// NewRecorder returns a recorder appending source() to series every period.
// Call Start to begin sampling.
func NewRecorder(series *Series, source func() float64, period time.Duration, logger golog.Logger) (*Recorder, error) {
	return newRecorder(series, source, period, clock.New(), logger)
}

func newRecorder(series *Series, source func() float64, period time.Duration, clk clock.Clock, logger golog.Logger) (*Recorder, error) {
	if series == nil {
		return nil, errors.New("recorder needs a series")
	}
	if source == nil {
		return nil, errors.New("recorder needs a source")
	}
	if period <= 0 {
		return nil, errors.Errorf("recorder period must be positive, got %v", period)
	}
	return &Recorder{series: series, source: source, period: period, clk: clk, logger: logger}, nil
}

// Start begins the background sampling loop.
func (r *Recorder) Start() {
	cancelCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer r.activeBackgroundWorkers.Done()
		ticker := r.clk.Ticker(r.period)
		defer ticker.Stop()
		for {
			select {
			case <-cancelCtx.Done():
				return
			case <-ticker.C:
			}
			r.series.Append(r.source())
		}
	})
	r.logger.Debugw("telemetry recorder started", "period", r.period)
}

// Close stops the sampling loop. The series keeps its data.
func (r *Recorder) Close() error {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.activeBackgroundWorkers.Wait()
	return nil
}
