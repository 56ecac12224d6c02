package core

import (
	"errors"
	"fmt"
)

// Orientation is the axis a line runs along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "VERTICAL"
	}
	return "HORIZONTAL"
}

// Forward returns the direction in which a line of this orientation is read.
func (o Orientation) Forward() Dir {
	if o == Vertical {
		return DirDown
	}
	return DirRight
}

// Cross returns the perpendicular orientation.
func (o Orientation) Cross() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

var (
	errTooFewPoints = errors.New("need at least two positions")
	errNotALine     = errors.New("not a line")
	errNoItems      = errors.New("must provide at least one item")
	errLineTooLong  = errors.New("line too long")
)

// OrientationOf classifies positions sharing a row as Horizontal and
// positions sharing a column as Vertical. Gaps between positions are allowed;
// contiguity is enforced when the grid builds lines.
func OrientationOf(positions []Position) (Orientation, error) {
	if len(positions) < 2 {
		return 0, errTooFewPoints
	}
	rows := make(map[int]struct{})
	cols := make(map[int]struct{})
	for _, p := range positions {
		rows[p.Row] = struct{}{}
		cols[p.Col] = struct{}{}
	}
	switch {
	case len(rows) > 1 && len(cols) > 1:
		return 0, errNotALine
	case len(rows) == 1:
		return Horizontal, nil
	default:
		return Vertical, nil
	}
}

// ValidatePoints checks that items could form a single line: at least one
// item, at most MaxLineLength, all in one row or one column.
func ValidatePoints(items []LineItem) error {
	switch {
	case len(items) == 0:
		return structuralError(errNoItems.Error())
	case len(items) == 1:
		return nil
	case len(items) > MaxLineLength:
		return structuralError(fmt.Sprintf("%s: %d cards, at most %d allowed",
			errLineTooLong, len(items), MaxLineLength))
	}
	positions := make([]Position, len(items))
	for i, it := range items {
		positions[i] = it.Pos
	}
	if _, err := OrientationOf(positions); err != nil {
		return structuralError(err.Error())
	}
	return nil
}
