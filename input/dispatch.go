package input

import "github.com/lixenwraith/labyrinth/engine"

// Feedback tells the front-end which cue an action produced
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackStep
	FeedbackBump
	FeedbackWin
)

// Dispatch forwards an action to the session.
// Actions that do not apply to the current phase fall through as no-ops.
func Dispatch(s *engine.Session, a Action) Feedback {
	if dir, ok := a.Direction(); ok {
		if s.Phase() != engine.PhasePlaying {
			return FeedbackNone
		}
		before := s.Position()
		after := s.HandleDirection(dir)
		switch {
		case s.IsWon():
			return FeedbackWin
		case after == before:
			return FeedbackBump
		}
		return FeedbackStep
	}

	if tier, ok := a.Tier(); ok {
		if _, started := s.NewGame(tier); started && s.IsWon() {
			return FeedbackWin
		}
		return FeedbackNone
	}

	switch a {
	case ActionStart:
		s.RequestStart()
	case ActionReplay:
		s.RequestReplay()
	case ActionScores:
		s.RequestScores()
	case ActionQuit:
		s.RequestQuit()
	}
	return FeedbackNone
}
