package printstream

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render maps decoded lines through lipgloss styles into ANSI terminal
// text, the way the teacher's debugger View() builds its layout out of
// lipgloss style builders rather than raw escape sequences. A page break
// is rendered as a faint separator row ahead of the line it precedes.
func Render(lines []Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.PageBreak {
			out = append(out, lipgloss.NewStyle().Faint(true).Render(strings.Repeat("-", 40)))
		}
		out = append(out, renderLine(l))
	}
	return strings.Join(out, "\n")
}

func renderLine(l Line) string {
	var b strings.Builder
	for _, c := range l.Chars {
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		b.WriteString(styleFor(c.Style).Render(string(r)))
	}
	return b.String()
}

// styleFor maps the subset of Style that lipgloss can express. DoubleWidth,
// Superscript, and Subscript have no ANSI terminal equivalent and are
// dropped rather than approximated.
func styleFor(s Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Has(Bold) || s.Has(DoubleStrike) {
		st = st.Bold(true)
	}
	if s.Has(Italic) {
		st = st.Italic(true)
	}
	if s.Has(Underline) {
		st = st.Underline(true)
	}
	if s.Has(StrikeThrough) {
		st = st.Strikethrough(true)
	}
	return st
}
