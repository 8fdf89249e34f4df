package commands

import (
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
)

// options are the command line flags. Zero values fall back to the
// environment and then to the mode and backend defaults.
type options struct {
	backend    string
	window     string
	cell       string
	fps        int
	length     int
	seed       int64
	logFile    string
	logLevel   string
	promEnable bool
	promListen string
}

func (o options) config(mode rules.GameMode) (config.Config, backend, error) {
	b, ok := backends[o.backend]
	if !ok {
		return config.Config{}, backend{}, errors.Errorf("unknown backend %q, want one of: %s", o.backend, backendNames())
	}
	r, err := rules.RulesFor(mode)
	if err != nil {
		return config.Config{}, backend{}, err
	}

	l := b.layouts[mode]
	cfg := config.FromEnv(config.Config{
		Mode:   string(mode),
		Window: l.window,
		Cell:   l.cell,
		FPS:    r.FPS,
		Length: r.Length,
	})

	if o.window != "" {
		if cfg.Window, err = config.ParseSize(o.window); err != nil {
			return config.Config{}, backend{}, err
		}
	}
	if o.cell != "" {
		if cfg.Cell, err = config.ParseSize(o.cell); err != nil {
			return config.Config{}, backend{}, err
		}
	}
	if o.fps != 0 {
		cfg.FPS = o.fps
	}
	if o.length != 0 {
		cfg.Length = o.length
	}
	cfg.Seed = o.seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := rules.Validate(cfg); err != nil {
		return config.Config{}, backend{}, err
	}
	return cfg, b, nil
}
