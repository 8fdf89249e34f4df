package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/arcade/render"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

func play(mode rules.GameMode, o options) error {
	cfg, b, err := o.config(mode)
	if err != nil {
		return err
	}
	prometheus(o.promEnable, o.promListen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := b.open(cfg.Window)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s backend", o.backend)
	}
	defer func() {
		if err := screen.Close(); err != nil {
			log.WithError(err).Error("unable to close backend")
		}
	}()

	canvas := render.Instrument(screen)
	m, err := rules.NewMatch(cfg, canvas, rand.New(rand.NewSource(uint64(cfg.Seed))))
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"Mode":    mode,
		"Backend": o.backend,
		"Window":  cfg.Window,
		"Cell":    cfg.Cell,
		"Seed":    cfg.Seed,
	}).Info("arcade starting")

	w := &worker.Worker{
		Match:  m,
		Canvas: canvas,
		Input:  screen,
		FPS:    cfg.FPS,
	}
	return w.Run(ctx)
}
