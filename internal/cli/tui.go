package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/render/term"
	"github.com/matzehuels/gridpath/pkg/session"
)

// Board styles
var (
	modeActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	modeIdleStyle   = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle       = lipgloss.NewStyle().Foreground(colorDim)
)

// modeKeys maps the number keys to placement modes, in display order.
var modeKeys = []struct {
	key  string
	mode grid.Mode
}{
	{"1", grid.ModeObstacle},
	{"2", grid.ModeStart},
	{"3", grid.ModeEnd},
	{"4", grid.ModeErase},
}

// =============================================================================
// GridModel - Interactive board
// =============================================================================

// GridModel is the bubbletea model for the interactive board. It translates
// key and mouse events into controller actions and advances the controller
// by one cycle after every event.
type GridModel struct {
	ctx    context.Context
	ctrl   *session.Controller
	logger *log.Logger

	row, col  int // cursor
	cellWidth int
	width     int // terminal columns; 0 until the first WindowSizeMsg
	status    string
	warn      bool
}

// NewGridModel creates a board model driving ctrl.
func NewGridModel(ctx context.Context, ctrl *session.Controller, logger *log.Logger) GridModel {
	return GridModel{
		ctx:       ctx,
		ctrl:      ctrl,
		logger:    logger,
		cellWidth: term.DefaultCellWidth,
		status:    "place a start and an end, then press enter",
	}
}

func (m GridModel) Init() tea.Cmd {
	return nil
}

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if quit := m.handleKey(msg.String()); quit {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row, col, ok := m.layout().HitTest(msg.X, msg.Y, m.ctrl.View().Size())
		if !ok {
			return m, nil
		}
		m.row, m.col = row, col
		m.place()
	}
	m.step()
	return m, nil
}

// handleKey applies one key press and reports whether the program should quit.
func (m *GridModel) handleKey(key string) bool {
	switch key {
	case "q", "ctrl+c", "esc":
		return true
	case "o", "1":
		m.ctrl.SetMode(grid.ModeObstacle)
	case "s", "2":
		m.ctrl.SetMode(grid.ModeStart)
	case "e", "3":
		m.ctrl.SetMode(grid.ModeEnd)
	case "x", "4":
		m.ctrl.SetMode(grid.ModeErase)
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case " ":
		m.place()
	case "+", "=":
		m.ctrl.SetSize(m.ctrl.Size() + 1)
	case "-", "_":
		m.ctrl.SetSize(m.ctrl.Size() - 1)
	case "r":
		m.ctrl.Reset()
		m.setStatus(false, "board cleared")
	case "c":
		n := m.ctrl.ClearMarks()
		m.setStatus(false, "cleared %d marks", n)
	case "enter":
		m.ctrl.RequestRun()
	}
	return false
}

func (m *GridModel) moveCursor(dr, dc int) {
	n := m.ctrl.Size()
	m.row = grid.Clamp(m.row+dr, 0, n-1)
	m.col = grid.Clamp(m.col+dc, 0, n-1)
}

func (m *GridModel) place() {
	mode := m.ctrl.Mode()
	if !m.ctrl.Place(m.row, m.col) && (mode == grid.ModeStart || mode == grid.ModeEnd) {
		m.setStatus(true, "cannot put %s on the other endpoint", mode)
	}
}

// step runs one controller cycle: pending resize, then pending run.
func (m *GridModel) step() {
	requested := m.ctrl.Pending()
	rep, err := m.ctrl.Update(m.ctx)
	if err != nil {
		m.logger.Error("update failed", "err", err)
		m.setStatus(true, "%v", err)
		return
	}

	// Keep the cursor on the board after a resize.
	n := m.ctrl.View().Size()
	m.row = grid.Clamp(m.row, 0, n-1)
	m.col = grid.Clamp(m.col, 0, n-1)

	switch {
	case rep != nil && rep.Result.Reached:
		m.setStatus(false, "path found: %d hops, %d cells visited", rep.Result.Hops, len(rep.Result.Visited))
	case rep != nil:
		m.setStatus(true, "no path: %d cells visited", len(rep.Result.Visited))
	case requested:
		m.setStatus(true, "place both a start and an end first")
	}
}

func (m *GridModel) setStatus(warn bool, format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.warn = warn
}

// layout locates the board on screen for mouse hit testing. The board's top
// border sits directly below the header.
func (m GridModel) layout() term.Layout {
	return term.Layout{OriginX: 0, OriginY: lipgloss.Height(m.header()), CellWidth: m.cellWidth}
}

// header renders the title and mode bar, wrapped to the terminal width so
// its height is known.
func (m GridModel) header() string {
	n := m.ctrl.View().Size()
	title := []string{
		StyleTitle.Render("gridpath"),
		StyleDim.Render(fmt.Sprintf("%dx%d", n, n)),
	}
	if size := m.ctrl.Size(); size != n {
		title = append(title, StyleWarning.Render(fmt.Sprintf("→ %dx%d", size, size)))
	}
	title = append(title, StyleHighlight.Render(fmt.Sprintf("%d,%d", m.row, m.col)))
	return wrapParts(title, m.width) + "\n" + m.modeBar()
}

func (m GridModel) View() string {
	var b strings.Builder
	v := m.ctrl.View()
	n := v.Size()

	b.WriteString(m.header())
	b.WriteString("\n")

	b.WriteString(term.Render(v, term.Options{
		CellWidth: m.cellWidth,
		Cursor:    m.row*n + m.col,
	}))
	b.WriteString("\n")
	b.WriteString(term.Legend())
	b.WriteString("\n\n")

	if m.warn {
		b.WriteString(StyleWarning.Render(m.status))
	} else {
		b.WriteString(StyleValue.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("click/space place  arrows/hjkl move  +/- size  enter run  c clear  r reset  q quit"))
	return b.String()
}

func (m GridModel) modeBar() string {
	parts := make([]string, 0, len(modeKeys))
	for _, mk := range modeKeys {
		label := fmt.Sprintf("[%s] %s", mk.key, mk.mode)
		if mk.mode == m.ctrl.Mode() {
			parts = append(parts, modeActiveStyle.Render(label))
		} else {
			parts = append(parts, modeIdleStyle.Render(label))
		}
	}
	return wrapParts(parts, m.width)
}

// wrapParts joins rendered parts with two spaces, starting a new line before
// a part that would cross width. A width of 0 never wraps.
func wrapParts(parts []string, width int) string {
	const sep = "  "
	var lines []string
	line := ""
	for _, p := range parts {
		if line != "" && width > 0 && lipgloss.Width(line)+len(sep)+lipgloss.Width(p) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += sep
		}
		line += p
	}
	return strings.Join(append(lines, line), "\n")
}
