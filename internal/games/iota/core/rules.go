package core

import (
	"errors"
	"fmt"
)

// Rules describes the card universe a grid plays with. Shapes and face values
// are fixed; the color palette may leave out colors.
type Rules struct {
	palette PropertySet
}

// DefaultRules plays with every color.
func DefaultRules() Rules {
	return Rules{palette: colorMask}
}

// NewRules builds rules for the given color palette.
func NewRules(colors ...Color) (Rules, error) {
	if len(colors) == 0 {
		return Rules{}, errors.New("rules: palette must contain at least one color")
	}
	var palette PropertySet
	for _, c := range colors {
		if int(c) >= len(colorNames) {
			return Rules{}, fmt.Errorf("rules: unknown color %d", c)
		}
		palette |= ColorProperty(c)
	}
	return Rules{palette: palette}, nil
}

// Colors returns the palette.
func (r Rules) Colors() []Color {
	return r.palette.Colors()
}

// Properties returns every property a card can carry under these rules.
func (r Rules) Properties() PropertySet {
	if r.palette == 0 {
		return DefaultRules().Properties()
	}
	return r.palette | shapeMask | faceMask
}

// Allows reports whether the card can be played under these rules.
func (r Rules) Allows(c Card) bool {
	if c.IsWildcard() {
		return true
	}
	if c.IsZero() {
		return false
	}
	return r.Properties().Has(ColorProperty(c.color))
}

// Universe returns every concrete card under these rules.
func (r Rules) Universe() CardSet {
	return r.CardsFrom(r.Properties())
}

// CardsFrom returns every card whose color, shape and face value are all in
// props (and allowed by the rules).
func (r Rules) CardsFrom(props PropertySet) CardSet {
	props &= r.Properties()
	set := make(CardSet)
	for _, c := range props.Colors() {
		for _, s := range props.Shapes() {
			for _, v := range props.FaceValues() {
				set.Add(Card{color: c, shape: s, face: uint8(v)})
			}
		}
	}
	return set
}

// CardSet is a set of concrete cards.
type CardSet map[Card]struct{}

// Add inserts c.
func (s CardSet) Add(c Card) {
	s[c] = struct{}{}
}

// Contains reports whether c is in the set.
func (s CardSet) Contains(c Card) bool {
	_, ok := s[c]
	return ok
}

// Union adds every card of other to s.
func (s CardSet) Union(other CardSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Intersect returns the cards found in both sets.
func (s CardSet) Intersect(other CardSet) CardSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(CardSet)
	for c := range small {
		if large.Contains(c) {
			out.Add(c)
		}
	}
	return out
}

// Sorted returns the cards ordered by color, shape and face value.
func (s CardSet) Sorted() []Card {
	out := make([]Card, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sortCards(out)
	return out
}
