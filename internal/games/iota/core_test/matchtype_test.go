package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

func TestDeduceMatchType(t *testing.T) {
	testCases := []struct {
		name   string
		cards  []core.Card
		want   core.MatchType
		wantOK bool
	}{
		{"empty", nil, core.Either, true},
		{"single", []core.Card{blueSquare1}, core.Either, true},
		{"two wildcards", []core.Card{core.Wildcard(), core.Wildcard()}, core.Either, true},
		{"one concrete and wildcard", []core.Card{blueSquare1, core.Wildcard()}, core.Either, true},
		{"same color", []core.Card{blueSquare1, blueCircle4, blueCross2}, core.Same, true},
		{"same face value", []core.Card{blueCross2, yellowCircle2, redTriangle2}, core.Same, true},
		{"all different", []core.Card{blueSquare1, yellowCircle3, redCross4}, core.Different, true},
		{"different with wildcard", []core.Card{blueSquare1, core.Wildcard(), yellowCircle3}, core.Different, true},
		{"partial overlap", []core.Card{blueSquare1, blueCircle3, redCross4}, 0, false},
		{"too long", []core.Card{blueSquare1, blueSquare1, blueSquare1, blueSquare1, blueSquare1}, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := core.DeduceMatchType(tc.cards)
			if ok != tc.wantOK {
				t.Fatalf("DeduceMatchType(%v) ok = %v, want %v", tc.cards, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("DeduceMatchType(%v) = %v, want %v", tc.cards, got, tc.want)
			}
		})
	}
}

func TestSameCandidatesForSharedColor(t *testing.T) {
	cards := []core.Card{blueSquare1, blueCircle4}

	// Blue is the only shared property, so any blue card fits.
	wantSet := core.CardSet{}
	for _, s := range core.AllShapes() {
		for fv := core.MinFaceValue; fv <= core.MaxFaceValue; fv++ {
			wantSet.Add(core.MustCard(core.Blue, s, fv))
		}
	}
	got := core.Same.CandidatesForNextCard(cards, core.DefaultRules())

	if diff := cmp.Diff(wantSet.Sorted(), got.Sorted(), cardComparer); diff != "" {
		t.Errorf("Same candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestSameCandidatesUnionSharedProperties(t *testing.T) {
	// Blue and square are both shared: blue cards plus square cards.
	got := core.Same.CandidatesForNextCard([]core.Card{blueSquare1, blueSquare4}, core.DefaultRules())

	want := 4*4 + 5*4 - 4
	if len(got) != want {
		t.Errorf("len(candidates) = %d, want %d", len(got), want)
	}
	if !got.Contains(redSquare2) || !got.Contains(blueCircle3) {
		t.Error("expected both red squares and blue circles among candidates")
	}
	if got.Contains(redCross4) {
		t.Error("red cross shares nothing and should not be a candidate")
	}
}

func TestDifferentCandidates(t *testing.T) {
	cards := []core.Card{blueSquare1, core.Wildcard(), yellowCircle3, redCross4}
	got := core.Different.CandidatesForNextCard(cards, core.DefaultRules())

	want := []core.Card{
		core.MustCard(core.Green, core.Triangle, 2),
		core.MustCard(core.White, core.Triangle, 2),
	}
	if diff := cmp.Diff(want, got.Sorted(), cardComparer); diff != "" {
		t.Errorf("Different candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestEitherCandidatesAreUniverse(t *testing.T) {
	rules := core.DefaultRules()
	got := core.Either.CandidatesForNextCard([]core.Card{blueSquare1}, rules)
	if len(got) != len(rules.Universe()) {
		t.Errorf("Either candidates = %d cards, want %d", len(got), len(rules.Universe()))
	}
}
