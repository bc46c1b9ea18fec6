package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trevorsandy/lpub3dNext/pkg/observability"
)

// renderProgressModel is the bubbletea model shown while the layout
// pipeline renders part images. Each rendered part advances the bar.
type renderProgressModel struct {
	total   int
	done    int
	current string
	width   int
	err     error
}

type renderStartMsg struct{ total int }

type partRenderedMsg struct{ name string }

type layoutDoneMsg struct{ err error }

func newRenderProgressModel() renderProgressModel {
	return renderProgressModel{width: 80}
}

func (m renderProgressModel) Init() tea.Cmd {
	return nil
}

func (m renderProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case renderStartMsg:
		m.total = msg.total
		m.done = 0
	case partRenderedMsg:
		m.done++
		m.current = msg.name
	case layoutDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

const progressBarWidth = 30

func (m renderProgressModel) View() string {
	if m.total == 0 {
		return StyleDim.Render("  computing layout...") + "\n"
	}

	filled := m.done * progressBarWidth / m.total
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := StyleHighlight.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", progressBarWidth-filled))

	label := fmt.Sprintf(" %d/%d parts", m.done, m.total)
	line := "  " + bar + StyleDim.Render(label)
	if m.current != "" {
		line += StyleDim.Render("  " + m.current)
	}
	return line + "\n"
}

// progressHooks feeds pipeline render events into a running bubbletea
// program.
type progressHooks struct {
	observability.NoopPipelineHooks
	program *tea.Program
}

func (h *progressHooks) OnRenderStart(_ context.Context, _ string, parts int) {
	h.program.Send(renderStartMsg{total: parts})
}

func (h *progressHooks) OnRenderPart(_ context.Context, _, nameKey string, _ time.Duration, _ error) {
	h.program.Send(partRenderedMsg{name: nameKey})
}
