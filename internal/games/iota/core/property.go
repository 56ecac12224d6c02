package core

import (
	"math/bits"
	"strconv"
	"strings"
)

// PropertySet is a set of card properties (colors, shapes and face values)
// packed into a bitmask.
type PropertySet uint32

// Bit layout: colors, then shapes, then face values.
const (
	colorOffset = 0
	shapeOffset = colorOffset + 5
	faceOffset  = shapeOffset + 4

	colorMask PropertySet = (1<<5 - 1) << colorOffset
	shapeMask PropertySet = (1<<4 - 1) << shapeOffset
	faceMask  PropertySet = (1<<MaxFaceValue - 1) << faceOffset
)

// ColorProperty returns the singleton set holding color c.
func ColorProperty(c Color) PropertySet {
	return 1 << (colorOffset + PropertySet(c))
}

// ShapeProperty returns the singleton set holding shape s.
func ShapeProperty(s Shape) PropertySet {
	return 1 << (shapeOffset + PropertySet(s))
}

// FaceProperty returns the singleton set holding face value v.
func FaceProperty(v int) PropertySet {
	return 1 << (faceOffset + PropertySet(v-MinFaceValue))
}

// Len returns the number of properties in the set.
func (s PropertySet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether the set has no properties.
func (s PropertySet) IsEmpty() bool {
	return s == 0
}

// Has reports whether every property of other is in s.
func (s PropertySet) Has(other PropertySet) bool {
	return s&other == other
}

// Colors returns the colors in the set.
func (s PropertySet) Colors() []Color {
	var out []Color
	for _, c := range AllColors() {
		if s.Has(ColorProperty(c)) {
			out = append(out, c)
		}
	}
	return out
}

// Shapes returns the shapes in the set.
func (s PropertySet) Shapes() []Shape {
	var out []Shape
	for _, sh := range AllShapes() {
		if s.Has(ShapeProperty(sh)) {
			out = append(out, sh)
		}
	}
	return out
}

// FaceValues returns the face values in the set, ascending.
func (s PropertySet) FaceValues() []int {
	var out []int
	for v := MinFaceValue; v <= MaxFaceValue; v++ {
		if s.Has(FaceProperty(v)) {
			out = append(out, v)
		}
	}
	return out
}

// Singletons splits the set into one-property sets.
func (s PropertySet) Singletons() []PropertySet {
	out := make([]PropertySet, 0, s.Len())
	for rest := s; rest != 0; rest &= rest - 1 {
		out = append(out, rest&-rest)
	}
	return out
}

// sameKind returns every property of the same kind as the singleton p.
func sameKind(p PropertySet) PropertySet {
	switch {
	case p&colorMask != 0:
		return colorMask
	case p&shapeMask != 0:
		return shapeMask
	default:
		return faceMask
	}
}

func (s PropertySet) String() string {
	var parts []string
	for _, c := range s.Colors() {
		parts = append(parts, c.String())
	}
	for _, sh := range s.Shapes() {
		parts = append(parts, sh.String())
	}
	for _, v := range s.FaceValues() {
		parts = append(parts, strconv.Itoa(v))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
