// Package dashboard holds the interactive list state: which page is shown and
// what the search box contains. Both views are recomputed from the store on
// every Render.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/pagination"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
)

// ErrRowOutOfRange is returned when a row position is not on the current page.
var ErrRowOutOfRange = errors.New("row not on current page")

// View is everything a frontend needs to draw the dashboard.
type View struct {
	Search    string               `json:"search"`
	Rows      []patient.PatientRow `json:"rows"`
	Meta      pagination.Meta      `json:"pagination"`
	Label     string               `json:"label"`
	Histogram chart.Histogram      `json:"histogram"`
	Chart     chart.BarChart       `json:"chart"`
}

type Dashboard struct {
	mu      sync.Mutex
	service patient.ServiceInterface
	params  pagination.Params
	search  string
}

func New(service patient.ServiceInterface) *Dashboard {
	return &Dashboard{service: service, params: pagination.NewParams()}
}

// SetFilter replaces the search text and goes back to the first page.
func (d *Dashboard) SetFilter(search string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.search = search
	d.params.Page = pagination.DefaultPage
}

func (d *Dashboard) Filter() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.search
}

func (d *Dashboard) Page() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params.Page
}

// NextPage advances unless already on the last page.
func (d *Dashboard) NextPage(ctx context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params.Next(d.matchCount(ctx))
}

// PreviousPage goes back unless already on the first page.
func (d *Dashboard) PreviousPage() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.params.Previous()
}

func (d *Dashboard) Add(ctx context.Context, req patient.CreatePatientRequest) (*patient.Patient, error) {
	return d.service.CreatePatient(ctx, req)
}

// DeleteRow deletes the patient shown at pos (0-based) on the current page.
// The row is resolved to the record's ID first, so it is the record the user
// saw that gets removed.
func (d *Dashboard) DeleteRow(ctx context.Context, pos int) (*patient.Patient, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	page := d.service.ListPatientsWithPagination(ctx, d.params, d.search)
	if pos < 0 || pos >= len(page.Patients) {
		return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, pos)
	}
	target := page.Patients[pos].Patient

	if err := d.service.DeletePatient(ctx, target.ID); err != nil {
		return nil, err
	}
	d.params.Clamp(d.matchCount(ctx))
	return &target, nil
}

// Render recomputes the current page and the histogram.
func (d *Dashboard) Render(ctx context.Context) View {
	d.mu.Lock()
	defer d.mu.Unlock()

	page := d.service.ListPatientsWithPagination(ctx, d.params, d.search)
	hist := d.service.ConditionHistogram(ctx)
	return View{
		Search:    d.search,
		Rows:      page.Patients,
		Meta:      page.Pagination,
		Label:     page.Label,
		Histogram: hist,
		Chart:     chart.NewBarChart(hist),
	}
}

func (d *Dashboard) matchCount(ctx context.Context) int {
	return d.service.ListPatientsWithPagination(ctx, d.params, d.search).Pagination.TotalRecords
}
