package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/session"
)

func newTestModel(size int) GridModel {
	logger := log.New(io.Discard)
	ctrl := session.New(session.Options{DefaultSize: size, Logger: logger})
	return NewGridModel(context.Background(), ctrl, logger)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m GridModel, msgs ...tea.Msg) GridModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GridModel)
	}
	return m
}

func repeat(msg tea.Msg, n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = msg
	}
	return out
}

func TestGridModelModeKeys(t *testing.T) {
	tests := []struct {
		key  string
		want grid.Mode
	}{
		{"2", grid.ModeStart},
		{"e", grid.ModeEnd},
		{"x", grid.ModeErase},
		{"o", grid.ModeObstacle},
	}

	m := newTestModel(5)
	for _, tt := range tests {
		m = send(t, m, runes(tt.key))
		if got := m.ctrl.Mode(); got != tt.want {
			t.Errorf("after %q mode = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestGridModelCursorClamps(t *testing.T) {
	m := newTestModel(5)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, runes("h"))
	if m.row != 0 || m.col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", m.row, m.col)
	}
	m = send(t, m, repeat(tea.KeyMsg{Type: tea.KeyDown}, 9)...)
	if m.row != 4 {
		t.Errorf("row = %d, want 4", m.row)
	}
}

func TestGridModelKeyboardRun(t *testing.T) {
	m := newTestModel(5)

	msgs := []tea.Msg{runes("s"), tea.KeyMsg{Type: tea.KeySpace}, runes("e")}
	msgs = append(msgs, repeat(runes("j"), 4)...)
	msgs = append(msgs, repeat(runes("l"), 4)...)
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, msgs...)

	if m.ctrl.Runs() != 1 {
		t.Fatalf("runs = %d, want 1", m.ctrl.Runs())
	}
	if !strings.Contains(m.status, "path found: 8 hops") {
		t.Errorf("status = %q", m.status)
	}
	if m.warn {
		t.Error("successful run should not warn")
	}
}

func TestGridModelRunWithoutEndpoints(t *testing.T) {
	m := newTestModel(5)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.ctrl.Runs() != 0 {
		t.Errorf("runs = %d, want 0", m.ctrl.Runs())
	}
	if !m.warn {
		t.Errorf("expected warning status, got %q", m.status)
	}
}

func TestGridModelMouseClick(t *testing.T) {
	m := newTestModel(5)

	top := m.layout().OriginY
	if top != 2 {
		t.Fatalf("board top = %d, want 2 (title and mode bar)", top)
	}

	// Cell (1,2): one line below the top border, columns 1+2*2 and 1+2*2+1.
	click := tea.MouseMsg{X: 5, Y: top + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, click)

	if got := m.ctrl.View().State(1*5 + 2); got != grid.Obstacle {
		t.Errorf("State(1,2) = %v, want Obstacle", got)
	}
	if m.row != 1 || m.col != 2 {
		t.Errorf("cursor = (%d,%d), want (1,2)", m.row, m.col)
	}

	// Releases and clicks on the border are ignored.
	release := click
	release.Action = tea.MouseActionRelease
	border := tea.MouseMsg{X: 0, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, release, border)
	if got := m.ctrl.View().State(1*5 + 2); got != grid.Obstacle {
		t.Errorf("State(1,2) = %v after ignored events, want Obstacle", got)
	}
}

func TestGridModelNarrowTerminalMouseClick(t *testing.T) {
	m := newTestModel(5)
	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 40})

	// The mode bar no longer fits on one line and wraps once.
	top := m.layout().OriginY
	if top != 3 {
		t.Fatalf("board top = %d, want 3 with a wrapped mode bar", top)
	}
	view := m.View()
	if lines := strings.Split(view, "\n"); !strings.Contains(lines[top], "┌") {
		t.Errorf("line %d = %q, want the board's top border", top, lines[top])
	}

	click := tea.MouseMsg{X: 5, Y: top + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, click)
	if m.row != 1 || m.col != 2 {
		t.Errorf("cursor = (%d,%d), want (1,2)", m.row, m.col)
	}
	if got := m.ctrl.View().State(1*5 + 2); got != grid.Obstacle {
		t.Errorf("State(1,2) = %v, want Obstacle", got)
	}
}

func TestWrapParts(t *testing.T) {
	parts := []string{"aaaa", "bbb", "cc"}
	tests := []struct {
		width int
		want  string
	}{
		{0, "aaaa  bbb  cc"},
		{80, "aaaa  bbb  cc"},
		{9, "aaaa  bbb\ncc"},
		{5, "aaaa\nbbb\ncc"},
		{2, "aaaa\nbbb\ncc"},
	}
	for _, tt := range tests {
		if got := wrapParts(parts, tt.width); got != tt.want {
			t.Errorf("wrapParts(width=%d) = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestGridModelResize(t *testing.T) {
	m := newTestModel(6)
	m = send(t, m, repeat(tea.KeyMsg{Type: tea.KeyDown}, 5)...)
	m = send(t, m, runes("-"))

	if got := m.ctrl.View().Size(); got != 5 {
		t.Fatalf("size = %d, want 5", got)
	}
	if m.row != 4 {
		t.Errorf("cursor row = %d, want 4 after shrink", m.row)
	}
}

func TestGridModelQuit(t *testing.T) {
	m := newTestModel(5)
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%q: expected quit command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: expected tea.QuitMsg", key.String())
		}
	}
}

func TestGridModelView(t *testing.T) {
	m := newTestModel(5)
	out := m.View()
	for _, want := range []string{"gridpath", "5x5", "obstacle", "enter run"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
