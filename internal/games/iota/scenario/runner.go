package scenario

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/iota/internal/games/iota/core"
	"github.com/vovakirdan/iota/internal/games/iota/scenario/formats"
)

// PlayResult is the outcome of one play.
type PlayResult struct {
	Index    int // 1-based
	Play     formats.Play
	Score    int
	Allowed  bool
	Err      error
	Mismatch string // empty when the outcome matched the expectation
}

// OK reports whether the play matched its expectation.
func (r PlayResult) OK() bool {
	return r.Mismatch == ""
}

// Frame is the grid after a play, for step-through viewers.
// The first frame holds the start card and has a zero Result.
type Frame struct {
	Grid      *core.Grid
	Result    PlayResult
	Highlight []core.Position
}

// Report summarizes a scenario run.
type Report struct {
	ScenarioID string
	Name       string
	Results    []PlayResult
	Frames     []Frame
	Total      int
	Mismatches int
	Duration   time.Duration
}

// Passed reports whether every play matched its expectation.
func (r Report) Passed() bool {
	return r.Mismatches == 0
}

// Final returns the grid after the last play.
func (r Report) Final() *core.Grid {
	return r.Frames[len(r.Frames)-1].Grid
}

// Runner plays scenarios against a fresh grid.
type Runner struct {
	Rules  core.Rules
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(rules core.Rules, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Rules: rules, Logger: logger}
}

// Run plays every play of s in order. Plays that fail are recorded and the
// run continues, since a failed AddLine leaves the grid untouched.
// An error is returned only if the start card cannot be placed.
func (r *Runner) Run(s Scenario) (Report, error) {
	began := time.Now()
	logger := r.Logger.With("scenario", s.ID)

	grid := core.NewGridWithRules(r.Rules)
	if err := grid.Start(s.Start); err != nil {
		return Report{}, fmt.Errorf("scenario %s: start: %w", s.ID, err)
	}

	report := Report{
		ScenarioID: s.ID,
		Name:       s.Name,
		Frames: []Frame{{
			Grid:      grid.Clone(),
			Highlight: []core.Position{core.Origin},
		}},
	}

	for i, play := range s.Plays {
		res := PlayResult{Index: i + 1, Play: play}
		switch play.Kind {
		case formats.PlayProbe:
			item := play.Items[0]
			res.Allowed = grid.IsCardAllowed(item.Card, item.Pos.Row, item.Pos.Col)
			if !res.Allowed {
				res.Err = grid.CheckCard(item.Card, item.Pos)
			}
		default:
			res.Score, res.Err = grid.AddLine(play.Items...)
			res.Allowed = res.Err == nil
			if res.Allowed {
				report.Total += res.Score
			}
		}
		res.Mismatch = mismatch(play, res)

		if res.OK() {
			logger.Debug("play", "n", res.Index, "kind", play.Kind, "score", res.Score, "err", res.Err)
		} else {
			report.Mismatches++
			logger.Warn("unexpected outcome", "n", res.Index, "kind", play.Kind, "detail", res.Mismatch)
		}

		frame := Frame{Grid: grid.Clone(), Result: res}
		if play.Kind == formats.PlayLine && res.Allowed {
			for _, it := range play.Items {
				frame.Highlight = append(frame.Highlight, it.Pos)
			}
		}
		report.Results = append(report.Results, res)
		report.Frames = append(report.Frames, frame)
	}

	report.Duration = time.Since(began)
	logger.Info("scenario finished", "total", report.Total, "mismatches", report.Mismatches)
	return report, nil
}

// Replay runs s quietly and returns its frames.
func Replay(s Scenario, rules core.Rules) ([]Frame, error) {
	report, err := NewRunner(rules, nil).Run(s)
	if err != nil {
		return nil, err
	}
	return report.Frames, nil
}

// mismatch describes how res differs from what play expects.
func mismatch(play formats.Play, res PlayResult) string {
	if play.Kind == formats.PlayProbe {
		if play.Allowed != nil && *play.Allowed != res.Allowed {
			return fmt.Sprintf("allowed = %v, want %v", res.Allowed, *play.Allowed)
		}
		return ""
	}

	if play.Reason != "" {
		if res.Err == nil {
			return fmt.Sprintf("scored %d, want error %s", res.Score, play.Reason)
		}
		if reason, _ := core.ReasonOf(res.Err); reason != play.Reason {
			return fmt.Sprintf("error %s, want %s", reason, play.Reason)
		}
		return ""
	}
	if res.Err != nil {
		if errors.Is(res.Err, core.ErrInvalidLine) {
			return fmt.Sprintf("rejected: %v", res.Err)
		}
		return res.Err.Error()
	}
	if play.Score != nil && *play.Score != res.Score {
		return fmt.Sprintf("score = %d, want %d", res.Score, *play.Score)
	}
	return ""
}
