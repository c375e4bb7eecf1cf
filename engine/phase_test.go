package engine

import (
	"testing"
)

// TestNextPhaseTable checks the defined transitions and a sample of rejected ones
func TestNextPhaseTable(t *testing.T) {
	valid := []struct {
		from Phase
		trig Trigger
		to   Phase
	}{
		{PhaseMenu, TriggerStart, PhaseTierSelect},
		{PhaseTierSelect, TriggerChooseTier, PhasePlaying},
		{PhasePlaying, TriggerDirection, PhasePlaying},
		{PhasePlaying, TriggerReachExit, PhaseEnded},
		{PhaseEnded, TriggerReplay, PhaseTierSelect},
		{PhaseEnded, TriggerViewScores, PhaseScores},
		{PhaseScores, TriggerReplay, PhaseTierSelect},
	}
	for _, tc := range valid {
		got, ok := NextPhase(tc.from, tc.trig)
		if !ok || got != tc.to {
			t.Errorf("Expected %s --%s--> %s, got %s (ok=%v)", tc.from, tc.trig, tc.to, got, ok)
		} else {
			t.Logf("✓ Valid transition: %s --%s--> %s", tc.from, tc.trig, tc.to)
		}
	}

	invalid := []struct {
		from Phase
		trig Trigger
	}{
		{PhaseMenu, TriggerChooseTier},
		{PhaseMenu, TriggerReplay},
		{PhaseTierSelect, TriggerStart},
		{PhasePlaying, TriggerReplay},
		{PhasePlaying, TriggerViewScores},
		{PhaseEnded, TriggerDirection},
		{PhaseScores, TriggerViewScores},
		{PhaseQuit, TriggerStart},
		{PhaseQuit, TriggerQuit},
	}
	for _, tc := range invalid {
		got, ok := NextPhase(tc.from, tc.trig)
		if ok || got != tc.from {
			t.Errorf("Expected %s --%s--> to be a no-op, got %s", tc.from, tc.trig, got)
		}
	}
}

// TestQuitReachableFromEveryLivePhase verifies the "any" row of the table
func TestQuitReachableFromEveryLivePhase(t *testing.T) {
	for _, p := range AllPhases() {
		if p == PhaseQuit {
			continue
		}
		if got, ok := NextPhase(p, TriggerQuit); !ok || got != PhaseQuit {
			t.Errorf("Expected %s --quit--> Quit, got %s", p, got)
		}
	}
}

func TestPhaseAndTriggerStrings(t *testing.T) {
	if PhaseScores.String() != "Scores" {
		t.Errorf("unexpected name %q", PhaseScores.String())
	}
	if Phase(99).String() != "Phase(99)" {
		t.Errorf("unexpected name %q", Phase(99).String())
	}
	if TriggerViewScores.String() != "view_scores" {
		t.Errorf("unexpected name %q", TriggerViewScores.String())
	}
}
