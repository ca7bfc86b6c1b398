package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

// RenderText draws a horizontal bar chart for terminals. The longest bar is
// width cells wide; every non-zero bin gets at least one cell.
func RenderText(h Histogram, width int) string {
	if width < 1 {
		width = 40
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(datasetLabel))
	b.WriteString("\n")

	if h.Empty() {
		b.WriteString(emptyStyle.Render("(no patients)"))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth, maxCount := 0, 0
	for _, bin := range h.Bins {
		if n := lipgloss.Width(bin.Condition); n > labelWidth {
			labelWidth = n
		}
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}

	for _, bin := range h.Bins {
		cells := bin.Count * width / maxCount
		if cells < 1 {
			cells = 1
		}
		label := labelStyle.Width(labelWidth).Render(bin.Condition)
		bar := barStyle.Render(strings.Repeat("█", cells))
		fmt.Fprintf(&b, "%s │ %s %d\n", label, bar, bin.Count)
	}
	return b.String()
}
