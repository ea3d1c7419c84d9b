// Package main demonstrates wiring a gamepad through a filter chain with
// dashboard-tunable smoothing and a telemetry buffer.
package main

import (
	"context"
	"math"
	"time"

	"github.com/edaniels/golog"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/prog694/stuylib/dashboard"
	"github.com/prog694/stuylib/input"
	"github.com/prog694/stuylib/input/fake"
	"github.com/prog694/stuylib/streams"
	"github.com/prog694/stuylib/telemetry"
)

var logger = golog.NewDevelopmentLogger("tuning")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) (err error) {
	joy := fake.NewJoystick("demo")
	pad := input.NewPS4(joy)

	store := dashboard.NewMemStore()
	smoothing := dashboard.NewNumber(store, "drive/smoothing", 8)
	deadband := dashboard.NewNumber(store, "drive/deadband", 0.05)

	db, err := streams.NewDeadband(deadband.Get())
	if err != nil {
		return err
	}
	ema, err := streams.NewExpMovingAverage(smoothing.Get())
	if err != nil {
		return err
	}
	chain, err := streams.NewChain(db, ema)
	if err != nil {
		return err
	}

	series, err := telemetry.NewSeries(512)
	if err != nil {
		return err
	}
	recorder, err := telemetry.NewRecorder(series, func() float64 {
		return chain.Apply(input.LeftStick(pad).Y)
	}, 20*time.Millisecond, logger)
	if err != nil {
		return err
	}
	recorder.Start()
	defer func() {
		err = multierr.Combine(err, recorder.Close())
	}()

	start := time.Now()
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return err
		case <-ticker.C:
		}
		// Wiggle the stick; the raw Y axis reports down as positive.
		joy.SetAxis(1, -math.Sin(time.Since(start).Seconds()))
		if last, ok := series.Last(); ok {
			logger.Infow("filtered stick", "pad", pad.Name(), "x", last.X, "y", last.Y)
		}
	}
}
