// Package core provides the rules engine for Iota: card values, line
// derivation, placement validation and scoring.
// This package is UI-agnostic and deterministic.
package core

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// MaxLineLength is the longest run of cards allowed in a row or column.
// Face values run from MinFaceValue to MaxFaceValue.
const (
	MaxLineLength = 4
	MinFaceValue  = 1
	MaxFaceValue  = MaxLineLength
)

// Color is the color property of a concrete card.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Yellow
	White
)

var colorNames = []string{"RED", "GREEN", "BLUE", "YELLOW", "WHITE"}

// AllColors returns every color, in declaration order.
func AllColors() []Color {
	return []Color{Red, Green, Blue, Yellow, White}
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "UNKNOWN"
}

// ParseColor parses a color name (case-insensitive).
func ParseColor(s string) (Color, bool) {
	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return Color(i), true
		}
	}
	return 0, false
}

// Shape is the shape property of a concrete card.
type Shape uint8

const (
	Circle Shape = iota
	Square
	Triangle
	Cross
)

var shapeNames = []string{"CIRCLE", "SQUARE", "TRIANGLE", "CROSS"}

// AllShapes returns every shape, in declaration order.
func AllShapes() []Shape {
	return []Shape{Circle, Square, Triangle, Cross}
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "UNKNOWN"
}

// ParseShape parses a shape name (case-insensitive).
func ParseShape(s string) (Shape, bool) {
	for i, name := range shapeNames {
		if strings.EqualFold(s, name) {
			return Shape(i), true
		}
	}
	return 0, false
}

// WildcardNotation is the text form of a wildcard card.
const WildcardNotation = "WILD"

// wildcardSerial hands out identities to wildcards.
var wildcardSerial atomic.Uint64

// Card is either a concrete color/shape/face card or a wildcard.
// Concrete cards compare by value. Each wildcard carries its own serial, so
// two wildcards are never equal to each other.
type Card struct {
	color  Color
	shape  Shape
	face   uint8
	serial uint64 // non-zero for wildcards
}

// NewCard constructs a concrete card.
func NewCard(color Color, shape Shape, faceValue int) (Card, error) {
	if int(color) >= len(colorNames) {
		return Card{}, fmt.Errorf("unknown color %d", color)
	}
	if int(shape) >= len(shapeNames) {
		return Card{}, fmt.Errorf("unknown shape %d", shape)
	}
	if faceValue < MinFaceValue || faceValue > MaxFaceValue {
		return Card{}, fmt.Errorf("face value %d out of range [%d, %d]",
			faceValue, MinFaceValue, MaxFaceValue)
	}
	return Card{color: color, shape: shape, face: uint8(faceValue)}, nil
}

// MustCard is like NewCard but panics on invalid arguments.
// Intended for tables and tests.
func MustCard(color Color, shape Shape, faceValue int) Card {
	c, err := NewCard(color, shape, faceValue)
	if err != nil {
		panic(err)
	}
	return c
}

// Wildcard returns a new wildcard, distinct from every other wildcard.
func Wildcard() Card {
	return Card{serial: wildcardSerial.Add(1)}
}

// IsZero reports whether c is the zero Card, which is not a playable card.
func (c Card) IsZero() bool {
	return c == Card{}
}

// IsWildcard reports whether the card is a wildcard.
func (c Card) IsWildcard() bool {
	return c.serial != 0
}

// FaceValue returns the points the card is worth. Wildcards are worth 0.
func (c Card) FaceValue() int {
	if c.IsWildcard() {
		return 0
	}
	return int(c.face)
}

// Color returns the card's color. Meaningless for wildcards.
func (c Card) Color() Color { return c.color }

// Shape returns the card's shape. Meaningless for wildcards.
func (c Card) Shape() Shape { return c.shape }

// MatchProperties returns the card's color, shape and face value as a set.
// A wildcard has no properties of its own.
func (c Card) MatchProperties() PropertySet {
	if c.IsWildcard() || c.face == 0 {
		return 0
	}
	return ColorProperty(c.color) | ShapeProperty(c.shape) | FaceProperty(int(c.face))
}

// Match returns the properties of set that this card shares.
// A wildcard matches anything and returns set unchanged.
func (c Card) Match(set PropertySet) PropertySet {
	if c.IsWildcard() {
		return set
	}
	return set & c.MatchProperties()
}

// String returns the card notation, e.g. "BLUE-SQUARE-1" or "WILD".
func (c Card) String() string {
	if c.IsWildcard() {
		return WildcardNotation
	}
	if c.face == 0 {
		return "NONE"
	}
	return fmt.Sprintf("%s-%s-%d", c.color, c.shape, c.face)
}

// ParseCard parses card notation. "WILD" yields a fresh wildcard.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, WildcardNotation) {
		return Wildcard(), nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Card{}, fmt.Errorf("invalid card %q: want COLOR-SHAPE-FACE or %s", s, WildcardNotation)
	}
	color, ok := ParseColor(parts[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown color %q", s, parts[0])
	}
	shape, ok := ParseShape(parts[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown shape %q", s, parts[1])
	}
	face, err := strconv.Atoi(parts[2])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: bad face value: %w", s, err)
	}
	c, err := NewCard(color, shape, face)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return c, nil
}

// sortCards orders concrete cards by color, shape, then face value.
func sortCards(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		if c := cmp.Compare(a.color, b.color); c != 0 {
			return c
		}
		if c := cmp.Compare(a.shape, b.shape); c != 0 {
			return c
		}
		if c := cmp.Compare(a.face, b.face); c != 0 {
			return c
		}
		return cmp.Compare(a.serial, b.serial)
	})
}
