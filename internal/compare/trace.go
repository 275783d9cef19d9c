package compare

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"diffpage/internal/align"
)

const traceColumnWidth = 80

var (
	styleChange = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleDelete = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleInsert = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleSame   = lipgloss.NewStyle().Faint(true)
)

// writeTrace dumps one classified line per aligned pair to the diagnostic
// stream.
func writeTrace(w io.Writer, pairs []align.Pair) {
	for _, p := range pairs {
		marker, style := classify(p)
		line := fmt.Sprintf("%-6s %-*s %-*s",
			marker,
			traceColumnWidth, ansi.Truncate(p.Left.Text, traceColumnWidth, "…"),
			traceColumnWidth, ansi.Truncate(p.Right.Text, traceColumnWidth, "…"))
		fmt.Fprintln(w, style.Render(line))
	}
}

func classify(p align.Pair) (string, lipgloss.Style) {
	switch {
	case !p.Changed:
		return "", styleSame
	case p.Left.Present() && p.Right.Present():
		return "change", styleChange
	case p.Left.Present():
		return "del", styleDelete
	default:
		return "add", styleInsert
	}
}
