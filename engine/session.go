package engine

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/labyrinth/difficulty"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/score"
	"github.com/sirupsen/logrus"
)

// SessionConfig wires a session's collaborators; nil fields get defaults
type SessionConfig struct {
	// Play area in presentation units
	Width, Height int

	// Maze seed, 0 = wall clock
	Seed int64

	Clock  Clock
	Ledger *score.Ledger
	Logger logrus.FieldLogger
}

// Session owns the phase, the active maze, the player position, the run timer and the ledger.
// It is driven from a single loop and is not safe for concurrent use.
type Session struct {
	width, height int

	clock  Clock
	gen    *maze.Generator
	ledger *score.Ledger
	log    logrus.FieldLogger

	phase     Phase
	tier      difficulty.Tier
	grid      *maze.Grid
	pos       maze.Position
	runID     uuid.UUID
	startedAt time.Time
	endedAt   time.Time
	lastEntry score.Entry
}

// NewSession creates a session in the Menu phase.
// A play area that degenerates for any tier is rejected here, once, at startup.
func NewSession(cfg SessionConfig) (*Session, error) {
	if err := difficulty.CheckPlayArea(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	s := &Session{
		width:  cfg.Width,
		height: cfg.Height,
		clock:  cfg.Clock,
		gen:    maze.NewGenerator(cfg.Seed),
		ledger: cfg.Ledger,
		log:    cfg.Logger,
		phase:  PhaseMenu,
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.ledger == nil {
		s.ledger = score.NewLedgerAt(s.clock.Now)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}

	s.log.WithFields(logrus.Fields{
		"width":  s.width,
		"height": s.height,
		"seed":   s.gen.Seed(),
	}).Info("session created")

	return s, nil
}

// fire applies a trigger to the phase table; false means the trigger was a no-op
func (s *Session) fire(trig Trigger) bool {
	to, ok := NextPhase(s.phase, trig)
	if !ok {
		return false
	}
	if to != s.phase {
		s.log.WithFields(logrus.Fields{
			"from":    s.phase.String(),
			"to":      to.String(),
			"trigger": trig.String(),
		}).Debug("phase transition")
	}
	s.phase = to
	return true
}

// RequestStart leaves the main menu for tier selection
func (s *Session) RequestStart() {
	s.fire(TriggerStart)
}

// NewGame builds and carves a fresh maze for the tier, resets the player and starts the timer.
// Returns false without side effects outside TierSelect or for an unknown tier.
func (s *Session) NewGame(tier difficulty.Tier) (maze.View, bool) {
	if !tier.Valid() {
		return nil, false
	}
	if _, ok := NextPhase(s.phase, TriggerChooseTier); !ok {
		return nil, false
	}

	s.tier = tier
	s.grid = s.gen.Build(s.width, s.height, tier.CellSize())
	s.pos = maze.Position{}
	s.runID = uuid.New()
	s.startedAt = s.clock.Now()
	s.endedAt = time.Time{}
	s.fire(TriggerChooseTier)

	s.log.WithFields(logrus.Fields{
		"run_id": s.runID.String(),
		"tier":   tier.String(),
		"cols":   s.grid.Cols(),
		"rows":   s.grid.Rows(),
	}).Info("maze generated")

	s.checkExit()
	return s.grid, true
}

// HandleDirection moves the player one cell if the passage is open.
// Outside Playing, and for blocked moves, the position is returned unchanged.
func (s *Session) HandleDirection(dir maze.Direction) maze.Position {
	if _, ok := NextPhase(s.phase, TriggerDirection); !ok {
		return s.pos
	}

	if to, ok := maze.Move(s.grid, s.pos, dir); ok {
		s.pos = to
		s.fire(TriggerDirection)
		s.checkExit()
	}
	return s.pos
}

// checkExit ends the run when the player stands on the exit
func (s *Session) checkExit() {
	if s.phase != PhasePlaying || s.pos != s.grid.Exit() {
		return
	}

	s.endedAt = s.clock.Now()
	seconds := s.elapsed()
	s.lastEntry = s.ledger.RecordEntry(s.tier, score.Entry{
		Seconds:    seconds,
		RunID:      s.runID,
		RecordedAt: s.endedAt,
	})
	s.fire(TriggerReachExit)

	s.log.WithFields(logrus.Fields{
		"run_id":  s.runID.String(),
		"tier":    s.tier.String(),
		"seconds": seconds,
	}).Info("maze completed")
}

// RequestReplay returns to tier selection and drops the finished maze
func (s *Session) RequestReplay() {
	if s.fire(TriggerReplay) {
		s.releaseMaze()
	}
}

// RequestScores opens the leaderboard after a finished run
func (s *Session) RequestScores() {
	s.fire(TriggerViewScores)
}

// RequestQuit enters the terminal phase from anywhere
func (s *Session) RequestQuit() {
	if s.fire(TriggerQuit) {
		s.releaseMaze()
		s.log.Info("session quit")
	}
}

func (s *Session) releaseMaze() {
	s.grid = nil
	s.pos = maze.Position{}
}

// IsWon reports whether the current run reached the exit
func (s *Session) IsWon() bool {
	return s.phase == PhaseEnded || s.phase == PhaseScores
}

// ElapsedSeconds returns the run time truncated to whole seconds:
// live while Playing, frozen after the exit is reached, zero otherwise
func (s *Session) ElapsedSeconds() int {
	switch s.phase {
	case PhasePlaying, PhaseEnded, PhaseScores:
		return s.elapsed()
	}
	return 0
}

func (s *Session) elapsed() int {
	end := s.endedAt
	if end.IsZero() {
		end = s.clock.Now()
	}
	return int(end.Sub(s.startedAt) / time.Second)
}

// TopScores returns up to n best durations for the tier, fastest first
func (s *Session) TopScores(tier difficulty.Tier, n int) []int {
	return s.ledger.TopSeconds(tier, n)
}

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Tier returns the tier of the current or last run
func (s *Session) Tier() difficulty.Tier { return s.tier }

// Position returns the player cell
func (s *Session) Position() maze.Position { return s.pos }

// RunID identifies the current or last run
func (s *Session) RunID() uuid.UUID { return s.runID }

// Ledger returns the score ledger shared by all runs
func (s *Session) Ledger() *score.Ledger { return s.ledger }

// LastEntry returns the entry recorded by the last finished run
func (s *Session) LastEntry() score.Entry { return s.lastEntry }

// Done reports whether the session has quit
func (s *Session) Done() bool { return s.phase == PhaseQuit }

// PlayArea returns the play area the mazes are sized to
func (s *Session) PlayArea() (width, height int) { return s.width, s.height }

// Maze returns the active maze geometry, nil outside Playing/Ended/Scores
func (s *Session) Maze() maze.View {
	if s.grid == nil {
		return nil
	}
	return s.grid
}

// Exit returns the exit cell of the active maze
func (s *Session) Exit() maze.Position {
	if s.grid == nil {
		return maze.Position{}
	}
	return s.grid.Exit()
}
