package patient

import (
	"encoding/json"
	"time"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/pagination"
)

// Patient is one record of the list. ID is generated on add and never reused;
// list order is insertion order.
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"created_at"`
}

// AgeInput is the raw age as submitted. It accepts a JSON number or a string
// so that non-numeric input reaches validation instead of failing decoding.
type AgeInput string

func (a *AgeInput) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = AgeInput(s)
		return nil
	}
	*a = AgeInput(b)
	return nil
}

// CreatePatientRequest represents the request to add a patient
type CreatePatientRequest struct {
	Name      string   `json:"name"`
	Age       AgeInput `json:"age"`
	Condition string   `json:"condition"`
}

// PatientRow is a patient as shown on a page. Position is the row on the
// page, Index the record's absolute position in the store.
type PatientRow struct {
	Position int `json:"position"`
	Index    int `json:"index"`
	Patient
}

type PatientSuccessResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Patient *Patient `json:"patient,omitempty"`
}

// PaginatedPatientListResponse is one filtered page plus the controls state.
type PaginatedPatientListResponse struct {
	Success    bool            `json:"success"`
	Patients   []PatientRow    `json:"patients"`
	Search     string          `json:"search"`
	Label      string          `json:"label"`
	Pagination pagination.Meta `json:"pagination"`
}

// ConditionStatsResponse carries the histogram and the chart drawn from it.
type ConditionStatsResponse struct {
	Success   bool            `json:"success"`
	Total     int             `json:"total"`
	Histogram chart.Histogram `json:"histogram"`
	Chart     chart.BarChart  `json:"chart"`
}
