package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	frames = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "worker",
			Name:      "frames_total",
			Help:      "Frames simulated and presented.",
		},
	)
	frameDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "arcade",
			Subsystem: "worker",
			Name:      "frame_seconds",
			Help:      "Time to simulate and present one frame.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05},
		},
	)
)

func init() {
	prometheus.MustRegister(frames, frameDuration)
}
