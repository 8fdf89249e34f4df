package rules

import "github.com/battlesnakeio/arcade/board"

// Outcome is the result of a finished round.
type Outcome struct {
	// Winner is nil for a draw and in single player.
	Winner *board.Snake
	Draw   bool
	// Slaughter is set when every snake died on the same frame.
	Slaughter bool
}

func (o Outcome) String() string {
	switch {
	case o.Draw:
		return "draw"
	case o.Winner != nil:
		return o.Winner.Name
	}
	return "over"
}

// CheckForGameOver checks if the round has ended. A single snake ends the round
// when it dies. In a duel the round ends as soon as one snake is dead: the
// survivor wins, and if both died the longer snake wins or it is a draw.
func CheckForGameOver(mode GameMode, snakes []*board.Snake) (Outcome, bool) {
	dead := []*board.Snake{}
	alive := []*board.Snake{}
	for _, s := range snakes {
		if s.Dead {
			dead = append(dead, s)
		} else {
			alive = append(alive, s)
		}
	}

	if len(dead) == 0 {
		return Outcome{}, false
	}
	if mode == GameModeSinglePlayer {
		return Outcome{}, true
	}
	if len(alive) == 1 {
		return Outcome{Winner: alive[0]}, true
	}
	if len(alive) > 1 {
		// only reachable with more than two snakes
		return Outcome{}, false
	}

	o := Outcome{Slaughter: true}
	best, tie := dead[0], false
	for _, s := range dead[1:] {
		switch {
		case s.Score() > best.Score():
			best, tie = s, false
		case s.Score() == best.Score():
			tie = true
		}
	}
	if tie {
		o.Draw = true
	} else {
		o.Winner = best
	}
	return o, true
}
