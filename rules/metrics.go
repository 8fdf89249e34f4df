package rules

import "github.com/prometheus/client_golang/prometheus"

var (
	roundsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "rules",
			Name:      "rounds_started_total",
			Help:      "Rounds started, including restarts.",
		},
		[]string{"mode"},
	)
	roundsEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "rules",
			Name:      "rounds_ended_total",
			Help:      "Rounds ended by outcome.",
		},
		[]string{"mode", "outcome"},
	)
	foodEaten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "rules",
			Name:      "food_eaten_total",
			Help:      "Food eaten per snake.",
		},
		[]string{"snake"},
	)
	deaths = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "rules",
			Name:      "deaths_total",
			Help:      "Snake deaths by cause.",
		},
		[]string{"cause"},
	)
)

func init() {
	prometheus.MustRegister(roundsStarted, roundsEnded, foodEaten, deaths)
}
