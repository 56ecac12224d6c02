package core_test

import (
	"testing"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

func TestNewCardRejectsBadFaceValue(t *testing.T) {
	for _, fv := range []int{-1, 0, core.MaxFaceValue + 1} {
		if _, err := core.NewCard(core.Blue, core.Square, fv); err == nil {
			t.Errorf("NewCard(face=%d) should fail", fv)
		}
	}
}

func TestCardMatchProperties(t *testing.T) {
	s0 := blueSquare1.MatchProperties()
	if got := blueSquare1.Match(s0); got != s0 {
		t.Errorf("Match(own properties) = %v, want %v", got, s0)
	}

	s1 := core.MustCard(core.Blue, core.Triangle, 1).Match(s0)
	if s1.IsEmpty() {
		t.Fatal("blue triangle 1 should share properties with blue square 1")
	}
	s2 := core.MustCard(core.Green, core.Triangle, 1).Match(s1)
	if s2.IsEmpty() {
		t.Fatal("green triangle 1 should still share the face value")
	}
	s3 := core.MustCard(core.Green, core.Cross, 2).Match(s2)
	if !s3.IsEmpty() {
		t.Errorf("expected no common property, got %v", s3)
	}
}

func TestWildcardMatchesEverything(t *testing.T) {
	s0 := blueSquare1.MatchProperties()
	wc := core.Wildcard()
	if got := wc.Match(s0); got != s0 {
		t.Errorf("wildcard.Match() = %v, want %v", got, s0)
	}
	if !wc.MatchProperties().IsEmpty() {
		t.Errorf("wildcard should have no properties, got %v", wc.MatchProperties())
	}
	if wc.FaceValue() != 0 {
		t.Errorf("wildcard FaceValue() = %d, want 0", wc.FaceValue())
	}
}

func TestCardEquality(t *testing.T) {
	if blueSquare1 != core.MustCard(core.Blue, core.Square, 1) {
		t.Error("concrete cards should compare by value")
	}
	wc := core.Wildcard()
	if wc == core.Wildcard() {
		t.Error("two wildcards should never be equal")
	}
	if wc != wc {
		t.Error("a wildcard should equal itself")
	}
}

func TestParseCard(t *testing.T) {
	testCases := []struct {
		input   string
		want    core.Card
		wantErr bool
	}{
		{"BLUE-SQUARE-1", blueSquare1, false},
		{"yellow-circle-3", yellowCircle3, false},
		{" RED-CROSS-4 ", redCross4, false},
		{"BLUE-SQUARE-5", core.Card{}, true},
		{"PURPLE-SQUARE-1", core.Card{}, true},
		{"BLUE-HEXAGON-1", core.Card{}, true},
		{"BLUE-SQUARE", core.Card{}, true},
		{"BLUE-SQUARE-x", core.Card{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := core.ParseCard(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseCard(%q) should fail, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseWildcard(t *testing.T) {
	a, err := core.ParseCard("wild")
	if err != nil {
		t.Fatalf("ParseCard(wild) failed: %v", err)
	}
	b, _ := core.ParseCard("WILD")
	if !a.IsWildcard() || !b.IsWildcard() {
		t.Fatal("expected wildcards")
	}
	if a == b {
		t.Error("each parsed wildcard should be distinct")
	}
	if a.String() != core.WildcardNotation {
		t.Errorf("String() = %q, want %q", a.String(), core.WildcardNotation)
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	for _, c := range core.DefaultRules().Universe().Sorted() {
		got, err := core.ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q) failed: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCard(%q) = %v", c, got)
		}
	}
}
