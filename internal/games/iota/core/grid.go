package core

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Grid is the shared board: a sparse map from positions to cards.
// A Grid is either empty or connected; every placement is validated against
// the cards already on it. Grid is not safe for concurrent use.
type Grid struct {
	rules Rules
	cells map[Position]Card
}

// NewGrid creates an empty grid playing with the default rules.
func NewGrid() *Grid {
	return NewGridWithRules(DefaultRules())
}

// NewGridWithRules creates an empty grid playing with the given rules.
func NewGridWithRules(r Rules) *Grid {
	return &Grid{
		rules: r,
		cells: make(map[Position]Card),
	}
}

// Rules returns the rules the grid plays with.
func (g *Grid) Rules() Rules {
	return g.rules
}

// Start places the first card at the origin.
func (g *Grid) Start(c Card) error {
	if !g.IsEmpty() {
		return ErrGridNotEmpty
	}
	if !g.rules.Allows(c) {
		return structuralError(fmt.Sprintf("card %s is not in play", c))
	}
	g.cells[Origin] = c
	return nil
}

// IsCardAllowed reports whether c may be placed at (row, col).
// It never modifies the grid.
func (g *Grid) IsCardAllowed(c Card, row, col int) bool {
	return g.CheckCard(c, P(row, col)) == nil
}

// CheckCard is IsCardAllowed with the reason for a rejection.
func (g *Grid) CheckCard(c Card, p Position) error {
	if err := g.check(g.newPlacement(c, p)); err != nil {
		return err
	}
	return nil
}

// AddCard places a single card and returns the lines it scores.
func (g *Grid) AddCard(c Card, p Position) ([]Line, error) {
	pl := g.newPlacement(c, p)
	if err := g.check(pl); err != nil {
		return nil, err
	}
	g.cells[p] = c
	return pl.scoringLines(), nil
}

// AddLine places up to MaxLineLength cards in one row or column and returns
// the points they score. Cards may be given in any order: each pass places the
// first card that is currently valid, until all are placed. If some card can
// never be placed, every card placed by this call is removed again and the
// grid is left as it was.
func (g *Grid) AddLine(items ...LineItem) (int, error) {
	if err := ValidatePoints(items); err != nil {
		return 0, err
	}
	var (
		undo      UndoLog[Position, Card]
		scoring   []Line
		remaining = slices.Clone(items)
	)
	for len(remaining) > 0 {
		var rejections []*InvalidLineError
		placed := false
		for i, it := range remaining {
			pl := g.newPlacement(it.Card, it.Pos)
			if err := g.check(pl); err != nil {
				rejections = append(rejections, err)
				continue
			}
			undo.Set(g.cells, it.Pos, it.Card)
			scoring = append(scoring, pl.scoringLines()...)
			remaining = slices.Delete(remaining, i, i+1)
			placed = true
			break
		}
		if !placed {
			undo.Rollback(g.cells)
			return 0, explainRejections(rejections)
		}
	}
	undo.Commit()
	return Score(scoring), nil
}

// explainRejections reports the most specific reason among the cards that
// could not be placed.
func explainRejections(rejections []*InvalidLineError) *InvalidLineError {
	worst := rejections[0]
	msgs := make([]string, len(rejections))
	for i, r := range rejections {
		msgs[i] = r.Message
		if r.Reason.severity() > worst.Reason.severity() {
			worst = r
		}
	}
	return invalid(worst.Reason, "no placeable card among %d remaining: %s",
		len(rejections), strings.Join(msgs, "; "))
}

// Len returns the number of cards on the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// IsEmpty reports whether no card has been placed.
func (g *Grid) IsEmpty() bool {
	return len(g.cells) == 0
}

// CardAt returns the card at p, if any.
func (g *Grid) CardAt(p Position) (Card, bool) {
	c, ok := g.cells[p]
	return c, ok
}

// Positions returns the occupied positions in row-major order.
func (g *Grid) Positions() []Position {
	positions := slices.Collect(maps.Keys(g.cells))
	slices.SortFunc(positions, func(a, b Position) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return positions
}

// Items returns every placed card with its position, in row-major order.
func (g *Grid) Items() []LineItem {
	positions := g.Positions()
	items := make([]LineItem, len(positions))
	for i, p := range positions {
		items[i] = LineItem{Card: g.cells[p], Pos: p}
	}
	return items
}

// Bounds returns the top-left and bottom-right occupied corners.
// ok is false for an empty grid.
func (g *Grid) Bounds() (topLeft, bottomRight Position, ok bool) {
	for p := range g.cells {
		if !ok {
			topLeft, bottomRight, ok = p, p, true
			continue
		}
		topLeft.Row = min(topLeft.Row, p.Row)
		topLeft.Col = min(topLeft.Col, p.Col)
		bottomRight.Row = max(bottomRight.Row, p.Row)
		bottomRight.Col = max(bottomRight.Col, p.Col)
	}
	return topLeft, bottomRight, ok
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rules: g.rules,
		cells: maps.Clone(g.cells),
	}
}

// Equal returns true if two grids hold the same cards at the same positions.
func (g *Grid) Equal(other *Grid) bool {
	return maps.Equal(g.cells, other.cells)
}

// placement is the effect a candidate card would have on the grid.
type placement struct {
	card       Card
	pos        Position
	horizontal Line
	vertical   Line
	hErr       *InvalidLineError
	vErr       *InvalidLineError
}

func (g *Grid) newPlacement(c Card, p Position) *placement {
	pl := &placement{card: c, pos: p}
	pl.horizontal, pl.hErr = g.lineThrough(c, p, Horizontal)
	pl.vertical, pl.vErr = g.lineThrough(c, p, Vertical)
	return pl
}

// scoringLines returns the lines of more than one card. A single-card line
// scores nothing: that card is counted through the other axis.
func (pl *placement) scoringLines() []Line {
	var lines []Line
	if pl.horizontal.Len() > 1 {
		lines = append(lines, pl.horizontal)
	}
	if pl.vertical.Len() > 1 {
		lines = append(lines, pl.vertical)
	}
	return lines
}

func (g *Grid) check(pl *placement) *InvalidLineError {
	if pl.card.IsZero() || !g.rules.Allows(pl.card) {
		return invalid(ReasonStructural, "card %s is not in play", pl.card)
	}
	if g.IsEmpty() {
		if pl.pos != Origin {
			return invalid(ReasonNotConnected, "first card must be placed at %s, not %s", Origin, pl.pos)
		}
		return nil
	}
	if _, occupied := g.cells[pl.pos]; occupied {
		return invalid(ReasonOccupied, "%s is already occupied", pl.pos)
	}
	if pl.hErr != nil {
		return pl.hErr
	}
	if pl.vErr != nil {
		return pl.vErr
	}
	if pl.horizontal.Len() == 1 && pl.vertical.Len() == 1 {
		return invalid(ReasonNotConnected, "%s at %s does not touch any card", pl.card, pl.pos)
	}
	if err := g.checkWildcards(pl.horizontal); err != nil {
		return err
	}
	return g.checkWildcards(pl.vertical)
}

// checkWildcards makes sure every wildcard of line can stand for one card
// that also fits the line crossing it. Wildcards already on the grid are
// checked too, since extending a line narrows what they can be.
func (g *Grid) checkWildcards(line Line) *InvalidLineError {
	wildcards := line.WildcardItems()
	if len(wildcards) == 0 {
		return nil
	}
	candidates := line.CandidatesForNextCard(g.rules)
	for _, wc := range wildcards {
		cross, err := g.lineThrough(wc.Card, wc.Pos, line.Orientation().Cross())
		if err != nil {
			return err
		}
		if cross.Len() == 1 {
			continue
		}
		if len(candidates.Intersect(cross.CandidatesForNextCard(g.rules))) == 0 {
			return invalid(ReasonWildcardConflict,
				"wildcard at %s cannot be both a %s card of %s and a %s card of %s",
				wc.Pos, line.MatchType(), line, cross.MatchType(), cross)
		}
	}
	return nil
}

// lineThrough derives the line through p along orientation, with c filling
// p if it is empty.
func (g *Grid) lineThrough(c Card, p Position, orientation Orientation) (Line, *InvalidLineError) {
	forward := orientation.Forward()
	start := g.endpoint(p, forward.Opposite())
	end := g.endpoint(p, forward)
	if start == end {
		return singleCardLine(c, p, orientation), nil
	}
	var items []LineItem
	for q := start; ; q = q.Step(forward) {
		card, ok := g.cells[q]
		if !ok {
			card = c
		}
		items = append(items, LineItem{Card: card, Pos: q})
		if q == end {
			break
		}
	}
	line := Line{items: items, orientation: orientation}
	if len(items) > MaxLineLength {
		return line, invalid(ReasonStructural, "%s line through %s would be %d cards long, at most %d allowed",
			orientation, p, len(items), MaxLineLength)
	}
	mt, ok := DeduceMatchType(line.Cards())
	if !ok {
		return line, invalid(ReasonNoMatch, "%s has neither a common property nor all different properties", line)
	}
	line.matchType = mt
	return line, nil
}

// endpoint walks from p in direction d and returns the last occupied cell
// before a gap (or p itself).
func (g *Grid) endpoint(p Position, d Dir) Position {
	last := p
	for next := p.Step(d); ; next = next.Step(d) {
		if _, ok := g.cells[next]; !ok {
			return last
		}
		last = next
	}
}
