package core_test

import (
	"testing"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

func horizontalLine(row, col int, cards ...core.Card) core.Line {
	items := make([]core.LineItem, len(cards))
	for i, c := range cards {
		items[i] = core.Item(c, row, col+i)
	}
	mt, _ := core.DeduceMatchType(cards)
	return core.NewLine(items, core.Horizontal, mt)
}

func verticalLine(row, col int, cards ...core.Card) core.Line {
	items := make([]core.LineItem, len(cards))
	for i, c := range cards {
		items[i] = core.Item(c, row+i, col)
	}
	mt, _ := core.DeduceMatchType(cards)
	return core.NewLine(items, core.Vertical, mt)
}

func TestLineFaceValue(t *testing.T) {
	l := horizontalLine(0, 0, blueSquare1, core.Wildcard(), blueCross4)
	if l.FaceValue() != 5 {
		t.Errorf("FaceValue() = %d, want 5", l.FaceValue())
	}
	if !l.HasWildcard() {
		t.Error("HasWildcard() = false, want true")
	}
	wcs := l.WildcardItems()
	if len(wcs) != 1 || wcs[0].Pos != core.P(0, 1) {
		t.Errorf("WildcardItems() = %v, want one wildcard at [0, 1]", wcs)
	}
	if l.MatchType() != core.Same {
		t.Errorf("MatchType() = %v, want SAME", l.MatchType())
	}
}

func TestLineOverlaps(t *testing.T) {
	long := horizontalLine(0, 0, blueSquare1, blueCircle4, blueCross2)
	prefix := horizontalLine(0, 0, blueSquare1, blueCircle4)
	shifted := horizontalLine(0, 2, blueCross2, blueTriangle3)
	otherRow := horizontalLine(1, 0, blueSquare1, blueCircle4)
	vertical := verticalLine(0, 0, blueSquare1, greenSquare2)

	testCases := []struct {
		name string
		a, b core.Line
		want bool
	}{
		{"prefix", long, prefix, true},
		{"prefix reversed", prefix, long, true},
		{"self", long, long, true},
		{"shifted", long, shifted, false},
		{"other row", long, otherRow, false},
		{"other orientation", prefix, vertical, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineItemsAreCopied(t *testing.T) {
	items := []core.LineItem{core.Item(blueSquare1, 0, 0), core.Item(blueCircle4, 0, 1)}
	l := core.NewLine(items, core.Horizontal, core.Same)
	items[0] = core.Item(redCross4, 5, 5)

	if l.Items()[0].Card != blueSquare1 {
		t.Error("NewLine should copy its items")
	}
	got := l.Items()
	got[1] = core.Item(redCross4, 5, 5)
	if l.Items()[1].Card != blueCircle4 {
		t.Error("Items() should return a copy")
	}
}

func TestLineString(t *testing.T) {
	l := horizontalLine(0, 0, blueSquare1, blueCircle4)
	want := "<|BLUE-SQUARE-1@[0, 0] - BLUE-CIRCLE-4@[0, 1]|>"
	if l.String() != want {
		t.Errorf("String() = %q, want %q", l.String(), want)
	}
}
