package main

import (
	"strconv"
	"strings"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// renderRows draws one page as a table followed by its "Page X of Y" label.
// The first column is the row position that shell delete expects.
func renderRows(rows []patient.PatientRow, label string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Name", "Age", "Condition", "ID").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(strconv.Itoa(r.Position), r.Name, strconv.Itoa(r.Age), r.Condition, r.ID)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")
	return b.String()
}
