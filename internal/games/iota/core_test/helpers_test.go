package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

// cardComparer lets cmp compare cards, whose fields are unexported.
var cardComparer = cmp.Comparer(func(x, y core.Card) bool { return x == y })

// Short names for the cards used throughout the scenarios.
var (
	blueSquare1    = core.MustCard(core.Blue, core.Square, 1)
	blueSquare4    = core.MustCard(core.Blue, core.Square, 4)
	blueCircle2    = core.MustCard(core.Blue, core.Circle, 2)
	blueCircle3    = core.MustCard(core.Blue, core.Circle, 3)
	blueCircle4    = core.MustCard(core.Blue, core.Circle, 4)
	blueCross2     = core.MustCard(core.Blue, core.Cross, 2)
	blueCross3     = core.MustCard(core.Blue, core.Cross, 3)
	blueCross4     = core.MustCard(core.Blue, core.Cross, 4)
	blueTriangle2  = core.MustCard(core.Blue, core.Triangle, 2)
	blueTriangle3  = core.MustCard(core.Blue, core.Triangle, 3)
	greenSquare2   = core.MustCard(core.Green, core.Square, 2)
	greenCircle3   = core.MustCard(core.Green, core.Circle, 3)
	greenCross3    = core.MustCard(core.Green, core.Cross, 3)
	greenCross4    = core.MustCard(core.Green, core.Cross, 4)
	greenTriangle1 = core.MustCard(core.Green, core.Triangle, 1)
	greenTriangle4 = core.MustCard(core.Green, core.Triangle, 4)
	redSquare2     = core.MustCard(core.Red, core.Square, 2)
	redSquare3     = core.MustCard(core.Red, core.Square, 3)
	redCircle1     = core.MustCard(core.Red, core.Circle, 1)
	redCircle2     = core.MustCard(core.Red, core.Circle, 2)
	redCross2      = core.MustCard(core.Red, core.Cross, 2)
	redCross4      = core.MustCard(core.Red, core.Cross, 4)
	redTriangle2   = core.MustCard(core.Red, core.Triangle, 2)
	yellowCircle1  = core.MustCard(core.Yellow, core.Circle, 1)
	yellowCircle2  = core.MustCard(core.Yellow, core.Circle, 2)
	yellowCircle3  = core.MustCard(core.Yellow, core.Circle, 3)
	yellowCircle4  = core.MustCard(core.Yellow, core.Circle, 4)
	yellowCross4   = core.MustCard(core.Yellow, core.Cross, 4)
	yellowTri1     = core.MustCard(core.Yellow, core.Triangle, 1)
)

// newStartedGrid returns a grid with first at the origin.
func newStartedGrid(t *testing.T, first core.Card) *core.Grid {
	t.Helper()
	g := core.NewGrid()
	if err := g.Start(first); err != nil {
		t.Fatalf("Start(%s) failed: %v", first, err)
	}
	return g
}

// mustAddLine places items and checks the score.
func mustAddLine(t *testing.T, g *core.Grid, want int, items ...core.LineItem) {
	t.Helper()
	got, err := g.AddLine(items...)
	if err != nil {
		t.Fatalf("AddLine(%v) failed: %v", items, err)
	}
	if got != want {
		t.Errorf("AddLine(%v) = %d, want %d", items, got, want)
	}
}
