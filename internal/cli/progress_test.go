package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRenderProgressModelAdvances(t *testing.T) {
	m := newRenderProgressModel()

	next, _ := m.Update(renderStartMsg{total: 4})
	m = next.(renderProgressModel)
	if m.total != 4 || m.done != 0 {
		t.Fatalf("after start: total=%d done=%d", m.total, m.done)
	}

	for i := 0; i < 3; i++ {
		next, _ = m.Update(partRenderedMsg{name: "3001_4"})
		m = next.(renderProgressModel)
	}
	if m.done != 3 {
		t.Errorf("done = %d, want 3", m.done)
	}
	if m.current != "3001_4" {
		t.Errorf("current = %q, want 3001_4", m.current)
	}

	view := m.View()
	if !strings.Contains(view, "3/4 parts") {
		t.Errorf("view missing progress count:\n%s", view)
	}
}

func TestRenderProgressModelQuitsOnDone(t *testing.T) {
	m := newRenderProgressModel()
	_, cmd := m.Update(layoutDoneMsg{})
	if cmd == nil {
		t.Fatal("layout done should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected quit message, got %T", cmd())
	}
}

func TestRenderProgressModelIdleView(t *testing.T) {
	m := newRenderProgressModel()
	if !strings.Contains(m.View(), "computing layout") {
		t.Errorf("idle view = %q", m.View())
	}
}
