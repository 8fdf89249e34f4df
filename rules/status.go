package rules

// Phase is where a round is in its lifecycle.
type Phase string

const (
	// PhaseRunning represents a round where the snakes are moving
	PhaseRunning Phase = "running"
	// PhaseEnded represents a round that is over, the board is frozen until a restart
	PhaseEnded Phase = "ended"
)
