package engine

import "fmt"

// Phase is the session's single control-flow state
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseTierSelect
	PhasePlaying
	PhaseEnded
	PhaseScores
	PhaseQuit // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseTierSelect:
		return "TierSelect"
	case PhasePlaying:
		return "Playing"
	case PhaseEnded:
		return "Ended"
	case PhaseScores:
		return "Scores"
	case PhaseQuit:
		return "Quit"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Trigger is a player or game event that may move the session between phases
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerChooseTier
	TriggerDirection
	TriggerReachExit
	TriggerReplay
	TriggerViewScores
	TriggerQuit
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerChooseTier:
		return "choose_tier"
	case TriggerDirection:
		return "direction"
	case TriggerReachExit:
		return "reach_exit"
	case TriggerReplay:
		return "replay"
	case TriggerViewScores:
		return "view_scores"
	case TriggerQuit:
		return "quit"
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// AllPhases lists every phase, terminal included
func AllPhases() []Phase {
	return []Phase{PhaseMenu, PhaseTierSelect, PhasePlaying, PhaseEnded, PhaseScores, PhaseQuit}
}

// AllTriggers lists every trigger
func AllTriggers() []Trigger {
	return []Trigger{
		TriggerStart, TriggerChooseTier, TriggerDirection, TriggerReachExit,
		TriggerReplay, TriggerViewScores, TriggerQuit,
	}
}

// transitions is the complete table; absent pairs are no-ops
var transitions = map[Phase]map[Trigger]Phase{
	PhaseMenu: {
		TriggerStart: PhaseTierSelect,
		TriggerQuit:  PhaseQuit,
	},
	PhaseTierSelect: {
		TriggerChooseTier: PhasePlaying,
		TriggerQuit:       PhaseQuit,
	},
	PhasePlaying: {
		TriggerDirection: PhasePlaying,
		TriggerReachExit: PhaseEnded,
		TriggerQuit:      PhaseQuit,
	},
	PhaseEnded: {
		TriggerReplay:     PhaseTierSelect,
		TriggerViewScores: PhaseScores,
		TriggerQuit:       PhaseQuit,
	},
	PhaseScores: {
		TriggerReplay: PhaseTierSelect,
		TriggerQuit:   PhaseQuit,
	},
}

// NextPhase looks up the transition for a trigger.
// ok is false when the trigger is not defined for the phase.
func NextPhase(from Phase, trig Trigger) (to Phase, ok bool) {
	to, ok = transitions[from][trig]
	if !ok {
		return from, false
	}
	return to, true
}
