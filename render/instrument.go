package render

import (
	"image"

	"github.com/battlesnakeio/arcade/board"
	"github.com/prometheus/client_golang/prometheus"
)

// Instrument wraps a canvas so that every Present is timed.
func Instrument(c Canvas) Canvas { return &metrics{c} }

var (
	presentDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "arcade",
			Subsystem: "render",
			Name:      "present_seconds",
			Help:      "Time spent presenting a frame.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		},
	)
	presentErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "render",
			Name:      "present_errors_total",
			Help:      "Frames the backend failed to present.",
		},
	)
)

func init() {
	prometheus.MustRegister(presentDuration, presentErrors)
}

type metrics struct{ c Canvas }

func (m *metrics) Size() (int, int) { return m.c.Size() }

func (m *metrics) Fill(c board.Color) { m.c.Fill(c) }

func (m *metrics) Rect(r image.Rectangle, c board.Color) { m.c.Rect(r, c) }

func (m *metrics) Line(from, to image.Point, c board.Color) { m.c.Line(from, to, c) }

func (m *metrics) Text(text string, fg, bg board.Color) Label { return m.c.Text(text, fg, bg) }

func (m *metrics) Present() error {
	t := prometheus.NewTimer(presentDuration)
	defer t.ObserveDuration()

	err := m.c.Present()
	if err != nil {
		presentErrors.Inc()
	}
	return err
}
