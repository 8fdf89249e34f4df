// Package worker runs a match. It owns the frame loop: poll input, tick the
// match, present the frame, wait for the next frame slot. Everything happens
// on the calling goroutine.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Worker drives a match at a fixed frame rate. Movement is one cell per
// frame, so game speed follows FPS rather than wall clock time.
type Worker struct {
	Match  *rules.Match
	Canvas render.Canvas
	Input  input.Source
	FPS    int
}

// Run plays frames until the input asks to quit or ctx is done. Both are a
// clean exit. A canvas that fails to present ends the loop with an error.
func (w *Worker) Run(ctx context.Context) error {
	if w.FPS <= 0 {
		return errors.Errorf("worker: invalid frame rate %d", w.FPS)
	}
	limiter := rate.NewLimiter(rate.Every(time.Second/time.Duration(w.FPS)), 1)

	log.WithFields(log.Fields{
		"Mode": w.Match.Mode,
		"FPS":  w.FPS,
	}).Info("worker starting")

	for {
		if err := limiter.Wait(ctx); err != nil {
			log.WithError(err).Info("worker stopping")
			return nil
		}

		keys, quit := w.Input.Poll()
		if quit {
			log.WithField("RoundID", w.Match.RoundID).Info("quit requested")
			return nil
		}

		start := time.Now()
		w.Match.Tick(keys)
		if err := w.Canvas.Present(); err != nil {
			return errors.Wrap(err, "worker: present frame")
		}
		frames.Inc()
		frameDuration.Observe(time.Since(start).Seconds())
	}
}
