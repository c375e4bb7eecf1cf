package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundBump SoundType = iota // Move into a wall
	SoundStep                  // Move into an open cell
	SoundWin                   // Exit reached
	soundTypeCount
)

// Effect shapes
const (
	BumpSoundDuration = 90 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 60 * time.Millisecond

	StepSoundDuration = 25 * time.Millisecond
	StepSoundAttack   = 2 * time.Millisecond
	StepSoundRelease  = 15 * time.Millisecond

	WinNoteDuration = 140 * time.Millisecond
	WinNoteAttack   = 5 * time.Millisecond
	WinNoteRelease  = 80 * time.Millisecond
)

// winArpeggio is a rising C major arpeggio (C5 E5 G5 C6)
var winArpeggio = []float64{523.25, 659.25, 783.99, 1046.50}
