package core

import "fmt"

// Position is a cell on the grid. The grid is unbounded in every direction;
// rows grow downward and columns grow to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Origin is where the first card of every game is placed.
var Origin = Position{}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Row, p.Col)
}

// Left returns the neighboring cell to the left.
func (p Position) Left() Position { return Position{Row: p.Row, Col: p.Col - 1} }

// Right returns the neighboring cell to the right.
func (p Position) Right() Position { return Position{Row: p.Row, Col: p.Col + 1} }

// Above returns the neighboring cell above.
func (p Position) Above() Position { return Position{Row: p.Row - 1, Col: p.Col} }

// Below returns the neighboring cell below.
func (p Position) Below() Position { return Position{Row: p.Row + 1, Col: p.Col} }

// Step returns the neighboring cell in direction d.
func (p Position) Step(d Dir) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Dir represents one of the four cardinal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (row, col) offset for one step in this direction.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}
