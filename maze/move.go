package maze

import "fmt"

// Direction is one of the four orthogonal moves
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Side returns the wall a move in direction d passes through
func (d Direction) Side() Side {
	return Side(d)
}

// Step returns the position one cell away from p in direction d
func (d Direction) Step(p Position) Position {
	switch d {
	case Up:
		return Position{p.X, p.Y - 1}
	case Right:
		return Position{p.X + 1, p.Y}
	case Down:
		return Position{p.X, p.Y + 1}
	case Left:
		return Position{p.X - 1, p.Y}
	}
	return p
}

// Valid reports whether d is one of the four defined directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Move validates a one-cell move from 'from' in direction d.
// A rejected move returns 'from' unchanged and false.
func Move(v View, from Position, d Direction) (Position, bool) {
	if !d.Valid() || !v.InBounds(from) {
		return from, false
	}
	if v.HasWall(from.X, from.Y, d.Side()) {
		return from, false
	}

	to := d.Step(from)
	if !v.InBounds(to) {
		return from, false
	}
	return to, true
}
