// Package formats provides pluggable scenario file format parsers.
package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/iota/internal/games/iota/core"
	"gopkg.in/yaml.v3"
)

// YAMLScenario represents the YAML structure for a scenario file.
type YAMLScenario struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Start    string            `yaml:"start"`
	Plays    []YAMLPlay        `yaml:"plays"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPlay is one turn: a line of cards to add, or a single card to probe.
type YAMLPlay struct {
	Cards  []YAMLPlacement `yaml:"cards,omitempty"`
	Probe  *YAMLPlacement  `yaml:"probe,omitempty"`
	Expect YAMLExpect      `yaml:"expect"`
}

// YAMLPlacement is a card notation at a grid position.
type YAMLPlacement struct {
	Card string `yaml:"card"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

// YAMLExpect holds the expected outcome of a play. All fields are optional.
type YAMLExpect struct {
	Score   *int   `yaml:"score,omitempty"`
	Error   string `yaml:"error,omitempty"`
	Allowed *bool  `yaml:"allowed,omitempty"`
}

// PlayKind tells lines from probes.
type PlayKind int

const (
	PlayLine PlayKind = iota
	PlayProbe
)

func (k PlayKind) String() string {
	if k == PlayProbe {
		return "probe"
	}
	return "line"
}

// Expect is a parsed expectation.
type Expect struct {
	Score   *int
	Reason  core.Reason // empty when the play is expected to succeed
	Allowed *bool
}

// Play is a parsed play.
type Play struct {
	Kind  PlayKind
	Items []core.LineItem // a single item for probes
	Expect
}

// Scenario represents a parsed scenario ready for use.
type Scenario struct {
	ID       string
	Name     string
	Start    core.Card
	Plays    []Play
	Metadata map[string]string
}

var (
	errMissingID    = errors.New("missing id")
	errMissingStart = errors.New("missing start card")
)

// ParseYAML parses a YAML scenario file. Every WILD in the file becomes a
// distinct wildcard.
func ParseYAML(data []byte) (Scenario, error) {
	var ys YAMLScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ys.ID == "" {
		return Scenario{}, errMissingID
	}
	if ys.Start == "" {
		return Scenario{}, errMissingStart
	}

	start, err := core.ParseCard(ys.Start)
	if err != nil {
		return Scenario{}, fmt.Errorf("start: %w", err)
	}

	s := Scenario{
		ID:       ys.ID,
		Name:     ys.Name,
		Start:    start,
		Plays:    make([]Play, 0, len(ys.Plays)),
		Metadata: ys.Metadata,
	}
	for i, yp := range ys.Plays {
		play, err := parsePlay(yp)
		if err != nil {
			return Scenario{}, fmt.Errorf("play %d: %w", i+1, err)
		}
		s.Plays = append(s.Plays, play)
	}
	return s, nil
}

func parsePlay(yp YAMLPlay) (Play, error) {
	var play Play
	switch {
	case len(yp.Cards) > 0 && yp.Probe != nil:
		return Play{}, errors.New("cards and probe are mutually exclusive")
	case yp.Probe != nil:
		play.Kind = PlayProbe
		item, err := parsePlacement(*yp.Probe)
		if err != nil {
			return Play{}, err
		}
		play.Items = []core.LineItem{item}
	case len(yp.Cards) > 0:
		play.Kind = PlayLine
		for _, p := range yp.Cards {
			item, err := parsePlacement(p)
			if err != nil {
				return Play{}, err
			}
			play.Items = append(play.Items, item)
		}
	default:
		return Play{}, errors.New("play needs cards or a probe")
	}

	play.Score = yp.Expect.Score
	play.Allowed = yp.Expect.Allowed
	if yp.Expect.Error != "" {
		reason, ok := core.ParseReason(yp.Expect.Error)
		if !ok {
			return Play{}, fmt.Errorf("unknown error reason %q", yp.Expect.Error)
		}
		play.Reason = reason
	}
	if play.Kind == PlayProbe && (play.Score != nil || play.Reason != "") {
		return Play{}, errors.New("a probe can only expect allowed")
	}
	if play.Kind == PlayLine && play.Allowed != nil {
		return Play{}, errors.New("a line cannot expect allowed, use score or error")
	}
	return play, nil
}

func parsePlacement(p YAMLPlacement) (core.LineItem, error) {
	card, err := core.ParseCard(p.Card)
	if err != nil {
		return core.LineItem{}, err
	}
	return core.Item(card, p.Row, p.Col), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
