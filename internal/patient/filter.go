package patient

import (
	"strings"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/pagination"
)

// Matches reports whether search occurs in the name or condition, ignoring
// case. An empty search matches everything.
func Matches(p Patient, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Condition), needle)
}

// Filter keeps matching patients in store order, remembering each one's
// absolute index.
func Filter(patients []Patient, search string) []PatientRow {
	rows := make([]PatientRow, 0, len(patients))
	for i, p := range patients {
		if Matches(p, search) {
			rows = append(rows, PatientRow{Index: i, Patient: p})
		}
	}
	return rows
}

// BuildPage filters patients and slices out the requested page. Rows are
// numbered from zero within the page.
func BuildPage(patients []Patient, search string, params pagination.Params) ([]PatientRow, pagination.Meta) {
	params.Validate()
	filtered := Filter(patients, search)
	start, end := params.Window(len(filtered))

	page := make([]PatientRow, 0, end-start)
	for pos, row := range filtered[start:end] {
		row.Position = pos
		page = append(page, row)
	}
	return page, params.CalculateMeta(len(filtered))
}

// Histogram counts conditions across all patients.
func Histogram(patients []Patient) chart.Histogram {
	conditions := make([]string, len(patients))
	for i, p := range patients {
		conditions[i] = p.Condition
	}
	return chart.Compute(conditions)
}
