// Package render re-emits a plain hexdump with a repeating color cycle
// applied to its cells, for terminal display.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hexglow/internal/hexdump"
)

// groupLines is the shape of one formatter chunk group: a hex line, an
// ASCII line, and a blank separator.
const groupLines = 3

// Colorizer applies a theme's 4-color cycle to the fixed-width cells of a
// formatted dump. It is stateless after construction and safe to reuse.
type Colorizer struct {
	theme  Theme
	styles [4]lipgloss.Style
}

func New(theme Theme) *Colorizer {
	c := &Colorizer{theme: theme}
	for i, col := range theme.Colors {
		c.styles[i] = lipgloss.NewStyle().Foreground(col)
	}
	return c
}

func (c *Colorizer) Theme() Theme { return c.theme }

// ColorizeLine styles consecutive 3-character spans of line, cycling through
// the theme colors from the first, and terminates the result with a newline.
func (c *Colorizer) ColorizeLine(line string) string {
	var b strings.Builder
	n := 0
	for i := 0; i < len(line); i += hexdump.CellWidth {
		end := i + hexdump.CellWidth
		if end > len(line) {
			end = len(line)
		}
		b.WriteString(c.styles[n].Render(line[i:end]))
		n++
		if n >= len(c.styles) {
			n = 0
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// Colorize re-emits the formatter's output with the color cycle applied.
// Input is consumed in groups of three lines (hex, ASCII, blank); the cycle
// restarts at the first color on every line. Empty input produces no output.
// Input that did not come from the formatter is not detected.
func (c *Colorizer) Colorize(dump string) string {
	lines := strings.Split(dump, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var b strings.Builder
	for i := 0; i+1 < len(lines); i += groupLines {
		b.WriteString(c.ColorizeLine(lines[i]))
		b.WriteString(c.ColorizeLine(lines[i+1]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Print assembles the colorized dump and writes it to w in a single call.
func (c *Colorizer) Print(w io.Writer, dump string) error {
	_, err := io.WriteString(w, c.Colorize(dump))
	return err
}
