package rules

import "github.com/battlesnakeio/arcade/board"

type deathUpdate struct {
	Snake *board.Snake
	Cause string
}

// checkForDeath looks for heads that ran into a snake, their own body
// included. A head on any segment of any snake, except the head itself, is
// lethal. Two heads on the same cell kill both.
func checkForDeath(snakes []*board.Snake) []deathUpdate {
	updates := []deathUpdate{}
	for _, s := range snakes {
		head := s.Head().Pos
		if cause, ok := collision(s, head, snakes); ok {
			updates = append(updates, deathUpdate{Snake: s, Cause: cause})
		}
	}
	return updates
}

func collision(s *board.Snake, head board.Point, snakes []*board.Snake) (string, bool) {
	for _, other := range snakes {
		for i, seg := range other.Segments() {
			if other == s && i == 0 {
				continue
			}
			if !head.Equal(seg.Pos) {
				continue
			}
			switch {
			case other == s:
				return board.DeathCauseSelfCollision, true
			case i == 0:
				return board.DeathCauseHeadToHeadCollision, true
			default:
				return board.DeathCauseSnakeCollision, true
			}
		}
	}
	return "", false
}
