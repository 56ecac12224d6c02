package core

import (
	"fmt"
	"strings"
)

// LineItem is a card at a position.
type LineItem struct {
	Card Card
	Pos  Position
}

// Item is a convenience constructor for LineItem.
func Item(c Card, row, col int) LineItem {
	return LineItem{Card: c, Pos: P(row, col)}
}

func (it LineItem) String() string {
	return fmt.Sprintf("%s@%s", it.Card, it.Pos)
}

// Line is a contiguous run of cards along one orientation, read left to
// right or top to bottom, with its deduced match type.
// A Line of length one stands for "no neighbors on this axis".
type Line struct {
	items       []LineItem
	orientation Orientation
	matchType   MatchType
}

// NewLine builds a line from items already in reading order.
func NewLine(items []LineItem, orientation Orientation, matchType MatchType) Line {
	return Line{
		items:       append([]LineItem(nil), items...),
		orientation: orientation,
		matchType:   matchType,
	}
}

// singleCardLine is the placeholder line of a card without neighbors on
// the given axis.
func singleCardLine(c Card, p Position, orientation Orientation) Line {
	return Line{
		items:       []LineItem{{Card: c, Pos: p}},
		orientation: orientation,
		matchType:   Either,
	}
}

// Len returns the number of cards in the line.
func (l Line) Len() int {
	return len(l.items)
}

// Orientation returns the axis of the line.
func (l Line) Orientation() Orientation {
	return l.orientation
}

// MatchType returns the deduced discipline of the line.
func (l Line) MatchType() MatchType {
	return l.matchType
}

// Items returns a copy of the line's items.
func (l Line) Items() []LineItem {
	return append([]LineItem(nil), l.items...)
}

// Cards returns the cards of the line in order.
func (l Line) Cards() []Card {
	cards := make([]Card, len(l.items))
	for i, it := range l.items {
		cards[i] = it.Card
	}
	return cards
}

// Positions returns the positions of the line in order.
func (l Line) Positions() []Position {
	positions := make([]Position, len(l.items))
	for i, it := range l.items {
		positions[i] = it.Pos
	}
	return positions
}

// FaceValue returns the sum of the face values of the line's cards.
func (l Line) FaceValue() int {
	sum := 0
	for _, it := range l.items {
		sum += it.Card.FaceValue()
	}
	return sum
}

// HasWildcard reports whether any card of the line is a wildcard.
func (l Line) HasWildcard() bool {
	for _, it := range l.items {
		if it.Card.IsWildcard() {
			return true
		}
	}
	return false
}

// WildcardItems returns the wildcard items of the line.
func (l Line) WildcardItems() []LineItem {
	var out []LineItem
	for _, it := range l.items {
		if it.Card.IsWildcard() {
			out = append(out, it)
		}
	}
	return out
}

// CandidatesForNextCard returns the cards that could fill a wildcard or open
// slot of this line.
func (l Line) CandidatesForNextCard(rules Rules) CardSet {
	return l.matchType.CandidatesForNextCard(l.Cards(), rules)
}

// Overlaps reports whether the two lines share an orientation and every
// position of the shorter one lies on the longer one.
func (l Line) Overlaps(other Line) bool {
	if l.orientation != other.orientation {
		return false
	}
	shorter, longer := l, other
	if longer.Len() < shorter.Len() {
		shorter, longer = longer, shorter
	}
	onLonger := make(map[Position]struct{}, longer.Len())
	for _, it := range longer.items {
		onLonger[it.Pos] = struct{}{}
	}
	for _, it := range shorter.items {
		if _, ok := onLonger[it.Pos]; !ok {
			return false
		}
	}
	return true
}

func (l Line) String() string {
	parts := make([]string, len(l.items))
	for i, it := range l.items {
		parts[i] = it.String()
	}
	return "<|" + strings.Join(parts, " - ") + "|>"
}
