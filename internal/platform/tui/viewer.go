package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/iota/internal/games/iota/core"
	"github.com/vovakirdan/iota/internal/games/iota/scenario"
	"github.com/vovakirdan/iota/internal/games/iota/scenario/formats"
)

// autoplayRate is the number of plays shown per second during autoplay.
const autoplayRate = 1

// ViewerModel is the Bubble Tea model for stepping through a replay.
type ViewerModel struct {
	title    string
	frames   []scenario.Frame
	cursor   int
	playing  bool
	theme    Theme
	keys     ViewerKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer over the given frames.
func NewViewerModel(title string, frames []scenario.Frame) ViewerModel {
	return ViewerModel{
		title:  title,
		frames: frames,
		theme:  GetTheme(),
		keys:   DefaultViewerKeyMap(),
		help:   help.New(),
	}
}

// Cursor returns the index of the frame on screen.
func (m ViewerModel) Cursor() int {
	return m.cursor
}

// Playing reports whether autoplay is on.
func (m ViewerModel) Playing() bool {
	return m.playing
}

// Init initializes the viewer.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
		case key.Matches(msg, m.keys.First):
			m.cursor = 0
		case key.Matches(msg, m.keys.Last):
			m.cursor = len(m.frames) - 1
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Play):
			m.playing = !m.playing
			if m.playing {
				if m.cursor == len(m.frames)-1 {
					m.cursor = 0
				}
				return m, tickCmd(autoplayRate)
			}
		}
		return m, nil

	case TickMsg:
		if !m.playing {
			return m, nil
		}
		m.step(1)
		if m.cursor == len(m.frames)-1 {
			m.playing = false
			return m, nil
		}
		return m, tickCmd(autoplayRate)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *ViewerModel) step(delta int) {
	m.cursor = max(0, min(len(m.frames)-1, m.cursor+delta))
}

// View renders the current frame.
func (m ViewerModel) View() string {
	if m.quitting || len(m.frames) == 0 {
		return ""
	}

	frame := m.frames[m.cursor]
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString(m.theme.Status.Render(fmt.Sprintf("  play %d/%d", m.cursor, len(m.frames)-1)))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(frame.Grid, m.theme, frame.Highlight))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine(frame))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// statusLine describes the play that produced the frame.
func (m ViewerModel) statusLine(frame scenario.Frame) string {
	res := frame.Result
	if res.Index == 0 {
		return m.theme.Status.Render("start")
	}

	var desc string
	switch {
	case res.Play.Kind == formats.PlayProbe:
		desc = fmt.Sprintf("probe %s: allowed=%v", res.Play.Items[0], res.Allowed)
	case res.Err != nil:
		reason, _ := core.ReasonOf(res.Err)
		desc = fmt.Sprintf("rejected [%s]", reason)
	default:
		desc = fmt.Sprintf("+%d points", res.Score)
	}

	if !res.OK() {
		return m.theme.StatusKO.Render(desc + "  (" + res.Mismatch + ")")
	}
	return m.theme.StatusOK.Render(desc)
}

// RunViewer runs the replay viewer until the user quits.
func RunViewer(title string, frames []scenario.Frame) error {
	if len(frames) == 0 {
		return errors.New("nothing to view")
	}
	p := tea.NewProgram(
		NewViewerModel(title, frames),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
