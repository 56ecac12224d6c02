package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/iota/internal/storage"
)

func TestRunRows(t *testing.T) {
	when := time.Date(2026, 3, 4, 15, 4, 0, 0, time.UTC)
	rows := RunRows([]storage.Run{
		{Total: 32, CreatedAt: when},
		{Total: 8, Mismatches: 2, CreatedAt: when},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "32" || rows[0][2] != "passed" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if rows[1][2] != "2 off" {
		t.Errorf("expected mismatch count, got %q", rows[1][2])
	}
	if rows[0][3] != "Mar 04 15:04" {
		t.Errorf("unexpected date %q", rows[0][3])
	}
}

func TestScoreboardCyclesScenarios(t *testing.T) {
	scenarios := []ScenarioEntry{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}}
	m := NewScoreboardModel(nil, scenarios, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if sel, _ := m.Selected(); sel.ID != "b" {
		t.Errorf("after tab: selected %q, want b", sel.ID)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if sel, _ := m.Selected(); sel.ID != "c" {
		t.Errorf("shift+tab should wrap around, selected %q", sel.ID)
	}
}

func TestScoreboardWithStore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{ScenarioID: "basics", Total: 32})

	m := NewScoreboardModel(store, []ScenarioEntry{{ID: "basics", Title: "Basics"}}, 100, 30)
	if len(m.runs) != 1 {
		t.Errorf("expected 1 run loaded, got %d", len(m.runs))
	}
}
