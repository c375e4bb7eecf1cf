package difficulty

import (
	"fmt"
	"strings"
)

// Tier is a fixed difficulty level; larger cells make fewer, easier mazes
type Tier int

const (
	Easy Tier = iota
	Medium
	Hard
	tierCount
)

// Cell sizes in presentation units
const (
	EasyCellSize   = 100
	MediumCellSize = 50
	HardCellSize   = 25
)

var tierNames = [tierCount]string{"easy", "medium", "hard"}

// All lists the tiers in menu order
func All() []Tier {
	return []Tier{Easy, Medium, Hard}
}

// Valid reports whether t is one of the defined tiers
func (t Tier) Valid() bool {
	return t >= Easy && t < tierCount
}

// CellSize returns the side length of one maze cell for the tier
func (t Tier) CellSize() int {
	switch t {
	case Easy:
		return EasyCellSize
	case Medium:
		return MediumCellSize
	case Hard:
		return HardCellSize
	}
	return EasyCellSize
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Title returns the display label
func (t Tier) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Parse resolves a case-insensitive tier name
func Parse(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return Easy, fmt.Errorf("unknown tier %q", s)
}
