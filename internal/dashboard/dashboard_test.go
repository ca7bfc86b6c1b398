package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/memory"
)

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	store := patient.NewStore(context.Background(), patient.NewRepository(memory.New(), "patients"))
	return New(patient.NewService(store))
}

func add(t *testing.T, d *Dashboard, name, age, condition string) {
	t.Helper()
	req := patient.CreatePatientRequest{Name: name, Age: patient.AgeInput(age), Condition: condition}
	if _, err := d.Add(context.Background(), req); err != nil {
		t.Fatalf("Failed to add %s: %v", name, err)
	}
}

func rowNames(v View) []string {
	out := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Name
	}
	return out
}

func TestDashboard_EmptyRender(t *testing.T) {
	d := newTestDashboard(t)

	v := d.Render(context.Background())
	if len(v.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(v.Rows))
	}
	if v.Label != "Page 1 of 1" {
		t.Errorf("Expected 'Page 1 of 1', got %q", v.Label)
	}
	if !v.Histogram.Empty() {
		t.Errorf("Expected empty histogram, got %+v", v.Histogram.Bins)
	}
}

func TestDashboard_FilterDeleteScenario(t *testing.T) {
	d := newTestDashboard(t)
	add(t, d, "Alice", "30", "Flu")
	add(t, d, "Bob", "45", "Flu")
	add(t, d, "Cara", "22", "Cold")

	d.SetFilter("flu")
	v := d.Render(context.Background())
	if len(v.Rows) != 2 {
		t.Fatalf("Expected 2 rows for 'flu', got %d", len(v.Rows))
	}
	if v.Histogram.Count("Flu") != 2 || v.Histogram.Count("Cold") != 1 {
		t.Errorf("Expected histogram over the unfiltered list, got %+v", v.Histogram.Bins)
	}

	// Row 1 of the filtered page is Bob, which is also store index 1.
	removed, err := d.DeleteRow(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if removed.Name != "Bob" {
		t.Errorf("Expected Bob to be removed, got %s", removed.Name)
	}

	d.SetFilter("")
	v = d.Render(context.Background())
	if got := rowNames(v); len(got) != 2 || got[0] != "Alice" || got[1] != "Cara" {
		t.Errorf("Expected [Alice Cara], got %v", got)
	}
	if v.Histogram.Count("Flu") != 1 || v.Histogram.Count("Cold") != 1 {
		t.Errorf("Expected Flu:1 Cold:1, got %+v", v.Histogram.Bins)
	}
}

func TestDashboard_DeleteRowUsesFilteredPosition(t *testing.T) {
	d := newTestDashboard(t)
	add(t, d, "Alice", "30", "Flu")
	add(t, d, "Bob", "45", "Cold")
	add(t, d, "Cara", "22", "Flu")

	d.SetFilter("flu")
	removed, err := d.DeleteRow(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if removed.Name != "Cara" {
		t.Errorf("Expected the displayed row (Cara) to be removed, got %s", removed.Name)
	}
}

func TestDashboard_DeleteRowOutOfRange(t *testing.T) {
	d := newTestDashboard(t)
	add(t, d, "Alice", "30", "Flu")

	for _, pos := range []int{-1, 1, 10} {
		if _, err := d.DeleteRow(context.Background(), pos); !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("Position %d: expected ErrRowOutOfRange, got %v", pos, err)
		}
	}
	if len(d.Render(context.Background()).Rows) != 1 {
		t.Error("Expected the store to be unchanged")
	}
}

func TestDashboard_Navigation(t *testing.T) {
	d := newTestDashboard(t)
	for i := 0; i < 25; i++ {
		add(t, d, fmt.Sprintf("P%02d", i), "1", "Flu")
	}

	if d.PreviousPage() {
		t.Error("Expected previous on page 1 to be a no-op")
	}
	if !d.NextPage(context.Background()) || !d.NextPage(context.Background()) {
		t.Fatal("Expected to reach page 3")
	}
	if d.NextPage(context.Background()) {
		t.Error("Expected next on the last page to be a no-op")
	}

	v := d.Render(context.Background())
	if v.Label != "Page 3 of 3" || len(v.Rows) != 5 {
		t.Errorf("Expected 5 rows on 'Page 3 of 3', got %d on %q", len(v.Rows), v.Label)
	}
	if v.Rows[0].Name != "P20" {
		t.Errorf("Expected first row P20, got %s", v.Rows[0].Name)
	}
}

func TestDashboard_SetFilterResetsPage(t *testing.T) {
	d := newTestDashboard(t)
	for i := 0; i < 15; i++ {
		add(t, d, fmt.Sprintf("P%02d", i), "1", "Flu")
	}
	d.NextPage(context.Background())

	d.SetFilter("p1")
	if d.Page() != 1 {
		t.Errorf("Expected page 1 after filter change, got %d", d.Page())
	}
	v := d.Render(context.Background())
	if v.Meta.TotalRecords != 5 {
		t.Errorf("Expected P10-P14 to match, got %d", v.Meta.TotalRecords)
	}
}

func TestDashboard_DeleteClampsToLastPage(t *testing.T) {
	d := newTestDashboard(t)
	for i := 0; i < 11; i++ {
		add(t, d, fmt.Sprintf("P%02d", i), "1", "Flu")
	}
	d.NextPage(context.Background())

	if _, err := d.DeleteRow(context.Background(), 0); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if d.Page() != 1 {
		t.Errorf("Expected page to clamp to 1, got %d", d.Page())
	}
	if v := d.Render(context.Background()); len(v.Rows) != 10 {
		t.Errorf("Expected a full first page, got %d rows", len(v.Rows))
	}
}

func TestDashboard_AddValidationError(t *testing.T) {
	d := newTestDashboard(t)

	_, err := d.Add(context.Background(), patient.CreatePatientRequest{Name: "Alice", Age: "abc", Condition: "Flu"})
	if !errors.Is(err, patient.ErrInvalidAge) {
		t.Errorf("Expected ErrInvalidAge, got %v", err)
	}
	if len(d.Render(context.Background()).Rows) != 0 {
		t.Error("Expected nothing to be added")
	}
}
