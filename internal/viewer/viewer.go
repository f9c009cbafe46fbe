// Package viewer provides an interactive terminal view of a colorized dump.
//
// Key bindings:
//
//	j/k, arrows - scroll one line
//	pgup/pgdn   - scroll one page
//	g/G         - jump to start/end
//	t           - cycle color themes
//	?           - toggle help
//	q           - quit
package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hexglow/internal/hexdump"
	"github.com/san-kum/hexglow/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// header and footer rows around the scrolling region
const chromeLines = 3

// Model is the bubbletea model for the hex view. It keeps the raw bytes so
// theme changes can re-colorize without rereading the file.
type Model struct {
	name     string
	data     []byte
	theme    render.Theme
	lines    []string
	offset   int
	width    int
	height   int
	showHelp bool
}

func New(name string, data []byte, theme render.Theme) Model {
	m := Model{name: name, data: data, theme: theme, width: 80, height: 24}
	m.rebuild()
	return m
}

// Theme reports the active theme.
func (m Model) Theme() render.Theme { return m.theme }

// Offset reports the index of the first visible dump line.
func (m Model) Offset() int { return m.offset }

func (m *Model) rebuild() {
	dump := hexdump.Dump(m.data, hexdump.DefaultPlaceholder)
	colored := render.New(m.theme).Colorize(dump)
	if colored == "" {
		m.lines = nil
		return
	}
	m.lines = strings.Split(strings.TrimRight(colored, "\n"), "\n")
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clamp()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup":
			m.offset -= m.visible()
		case "pgdown":
			m.offset += m.visible()
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = len(m.lines)
		case "t":
			m.theme = render.Next(m.theme.Name)
			m.rebuild()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.clamp()
	}
	return m, nil
}

func (m Model) visible() int {
	v := m.height - chromeLines
	if v < 1 {
		v = 1
	}
	return v
}

func (m *Model) clamp() {
	max := len(m.lines) - m.visible()
	if max < 0 {
		max = 0
	}
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.name))
	b.WriteString(labelStyle.Render("  size "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", len(m.data))))
	b.WriteString(labelStyle.Render("  theme "))
	b.WriteString(valueStyle.Render(m.theme.Name))
	b.WriteString(labelStyle.Render("  pos "))
	b.WriteString(valueStyle.Render(m.position()))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(helpStyle.Render(helpText))
		return b.String()
	}

	if len(m.lines) == 0 {
		b.WriteString(labelStyle.Render("(empty file)"))
		b.WriteString("\n")
	} else {
		end := m.offset + m.visible()
		if end > len(m.lines) {
			end = len(m.lines)
		}
		for _, line := range m.lines[m.offset:end] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString(helpStyle.Render("j/k scroll • pgup/pgdn page • t theme • ? help • q quit"))
	return b.String()
}

func (m Model) position() string {
	if len(m.lines) <= m.visible() {
		return "all"
	}
	return fmt.Sprintf("%d%%", m.offset*100/(len(m.lines)-m.visible()))
}

const helpText = `  j / down      scroll down one line
  k / up        scroll up one line
  pgdn / pgup   scroll one page
  g / G         jump to start / end
  t             cycle color theme
  ?             close this help
  q / esc       quit`
