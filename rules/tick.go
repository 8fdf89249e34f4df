package rules

import (
	"fmt"
	"image"
	"strings"

	"github.com/battlesnakeio/arcade/board"
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/render"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Match is one or two snakes and a piece of food on a board, played round
// after round. All of its state is owned by the goroutine calling Tick.
type Match struct {
	Mode    GameMode
	Rules   Rules
	Phase   Phase
	Outcome Outcome
	RoundID string
	Turn    int64
	Snakes  []*board.Snake
	Food    *board.Food

	grid    board.Grid
	length  int
	painter *render.Painter
	rng     *rand.Rand
}

// NewMatch validates cfg and starts the first round. Nothing is drawn until
// the first Tick.
func NewMatch(cfg config.Config, canvas render.Canvas, rng *rand.Rand) (*Match, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	mode := GameMode(cfg.Mode)
	r, err := RulesFor(mode)
	if err != nil {
		return nil, err
	}

	grid := cfg.Grid()
	m := &Match{
		Mode:    mode,
		Rules:   r,
		grid:    grid,
		length:  cfg.Length,
		painter: render.NewPainter(canvas, grid, cfg.Cell.W, cfg.Cell.H),
		rng:     rng,
	}
	m.Reset()
	return m, nil
}

// Reset throws away the snakes and food and starts a new round.
func (m *Match) Reset() {
	m.Snakes = createSnakes(m.Mode, m.Rules, m.grid, m.length, m.rng)
	m.Food = board.NewFood(m.grid, colorFood, m.rng)
	placeFood(m.grid, m.Food, m.Snakes)
	m.Phase = PhaseRunning
	m.Outcome = Outcome{}
	m.RoundID = uuid.NewV4().String()
	m.Turn = 0

	roundsStarted.WithLabelValues(string(m.Mode)).Inc()
	log.WithFields(log.Fields{
		"RoundID": m.RoundID,
		"Mode":    m.Mode,
		"Grid":    fmt.Sprintf("%dx%d", m.grid.Cols, m.grid.Rows),
		"Food":    m.Food.Position(),
	}).Info("round started")
}

// Over reports whether the current round has ended.
func (m *Match) Over() bool {
	return m.Phase == PhaseEnded
}

// Tick runs one frame: steer, move, draw, eat, collide, check for the end of
// the round and restart it when asked to. The frame is left on the canvas,
// presenting it is up to the caller.
func (m *Match) Tick(keys input.Set) {
	m.Turn++
	m.steer(keys)

	m.painter.Background(colorBackground)
	m.painter.Food(m.Food)

	wasDead := make([]bool, len(m.Snakes))
	for i, s := range m.Snakes {
		wasDead[i] = s.Dead
		s.Update()
		m.painter.Snake(s)
	}

	m.painter.GridLines(colorGridLines)

	m.feed()

	if m.Mode == GameModeTwoPlayer {
		for _, du := range checkForDeath(m.Snakes) {
			du.Snake.Kill(du.Cause)
		}
	}

	for i, s := range m.Snakes {
		if s.Dead && !wasDead[i] {
			deaths.WithLabelValues(s.Cause).Inc()
			m.logger().WithFields(log.Fields{
				"Snake": s.Name,
				"Cause": s.Cause,
				"Score": s.Score(),
			}).Info("snake died")
		}
	}

	endedNow := false
	if m.Phase == PhaseRunning {
		if o, over := CheckForGameOver(m.Mode, m.Snakes); over {
			m.end(o)
			endedNow = true
		}
	}
	if m.Phase == PhaseEnded {
		m.drawEnd()
	}
	m.drawScores()

	// a duel only reads the restart key from the frame after the round ended
	if endedNow && m.Mode == GameModeTwoPlayer {
		return
	}
	if m.Over() && keys.Held(m.Rules.Restart) {
		m.logger().Info("restarting")
		m.Reset()
	}
}

// steer turns each snake at most once per frame. Every held key is checked
// against the heading the snake had when the frame started, the last key
// that is not a reversal wins.
func (m *Match) steer(keys input.Set) {
	for i, s := range m.Snakes {
		prev := s.Head().Dir
		next, turn := prev, false
		for _, b := range m.Rules.Players[i].Bindings {
			if keys.Held(b.Key) && b.Dir != prev.Opposite() {
				next, turn = b.Dir, true
			}
		}
		if turn {
			s.SetHeadDirection(next)
		}
	}
}

// feed grows every snake whose head is on the food and moves the food off
// all snakes.
func (m *Match) feed() {
	for _, s := range m.Snakes {
		if !s.Head().Pos.Equal(m.Food.Position()) {
			continue
		}
		food := m.Food.Position()
		s.Grow(m.Rules.Growth)
		if !placeFood(m.grid, m.Food, m.Snakes) {
			m.logger().Warn("board is full, food left in place")
		}
		foodEaten.WithLabelValues(s.Name).Inc()
		m.logger().WithFields(log.Fields{
			"Snake": s.Name,
			"Score": s.Score(),
			"Food":  food,
			"Next":  m.Food.Position(),
		}).Info("snake ate")
	}
}

func (m *Match) end(o Outcome) {
	m.Phase = PhaseEnded
	m.Outcome = o
	for _, s := range m.Snakes {
		s.Freeze()
	}

	roundsEnded.WithLabelValues(string(m.Mode), o.String()).Inc()
	fields := log.Fields{"Outcome": o.String()}
	for _, s := range m.Snakes {
		fields[s.Name] = s.Score()
	}
	m.logger().WithFields(fields).Info("round ended")
}

// Banner returns the end of round message and the color behind it.
func (m *Match) Banner() (string, board.Color) {
	if m.Mode == GameModeSinglePlayer {
		return fmt.Sprintf("YOUR SCORE:\n%d", m.Snakes[0].Score()), m.Rules.Players[0].WinColor
	}

	o := m.Outcome
	if o.Draw {
		return " THERE IS A DRAW! ", colorDrawBadge
	}
	if o.Winner == nil {
		return " GAME OVER ", colorDrawBadge
	}
	p := m.player(o.Winner)
	if o.Slaughter {
		return fmt.Sprintf(" SLAUGHTER!\n%s WINS ! ", strings.ToUpper(p.Name)), p.SlaughterColor
	}
	return fmt.Sprintf(" %s WINS! ", strings.ToUpper(p.Name)), p.WinColor
}

func (m *Match) drawEnd() {
	if m.Mode == GameModeTwoPlayer {
		for _, s := range m.Snakes {
			if s.Dead {
				m.painter.Paint(s.Head().Pos, colorDeadHead)
			}
		}
	}
	text, bg := m.Banner()
	b := m.painter.Bounds()
	center := image.Pt(b.Max.X/2, b.Max.Y/2)
	m.painter.Text(text, colorBannerText, bg, render.Center, center)
}

func (m *Match) drawScores() {
	b := m.painter.Bounds()
	margin := m.painter.Cell.X
	for i, s := range m.Snakes {
		p := m.Rules.Players[i]
		at := image.Pt(margin, 0)
		if p.ScoreAnchor == render.TopRight {
			at = image.Pt(b.Max.X-margin, 0)
		}
		m.painter.Text(fmt.Sprint(s.Score()), s.Color, colorBackground, p.ScoreAnchor, at)
	}
}

func (m *Match) player(s *board.Snake) Player {
	for i, other := range m.Snakes {
		if other == s {
			return m.Rules.Players[i]
		}
	}
	return Player{}
}

func (m *Match) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"RoundID": m.RoundID,
		"Turn":    m.Turn,
	})
}
