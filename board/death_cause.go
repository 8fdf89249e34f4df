package board

const (
	// DeathCauseSelfCollision is when two segments of the same snake end up on the same cell
	DeathCauseSelfCollision = "self-collision"
	// DeathCauseSnakeCollision is when a snake's head runs into the body of another snake
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseHeadToHeadCollision is when two heads meet on the same cell
	DeathCauseHeadToHeadCollision = "head-collision"
)
