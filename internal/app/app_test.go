package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/config"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:          "0",
		Env:           "test",
		StorageDriver: "file",
		StorageKey:    "patients",
		FileRoot:      t.TempDir(),
	}
}

func TestNew_WiresServiceAndDashboard(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close(ctx)

	if _, err := a.Dashboard.Add(ctx, patient.CreatePatientRequest{Name: "Alice", Age: "30", Condition: "Flu"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	view := a.Dashboard.Render(ctx)
	if len(view.Rows) != 1 || view.Histogram.Count("Flu") != 1 {
		t.Errorf("Expected one Flu row, got %+v", view)
	}
}

func TestNew_ReloadsPersistedList(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	created, err := a.Service.CreatePatient(ctx, patient.CreatePatientRequest{Name: "Bob", Age: "45", Condition: "Flu"})
	if err != nil {
		t.Fatalf("CreatePatient failed: %v", err)
	}
	a.Close(ctx)

	if _, err := os.Stat(filepath.Join(cfg.FileRoot, "patients.json")); err != nil {
		t.Fatalf("Expected snapshot file: %v", err)
	}

	b, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("second New failed: %v", err)
	}
	defer b.Close(ctx)

	got, err := b.Service.GetPatient(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected patient after reload: %v", err)
	}
	if got.Name != "Bob" {
		t.Errorf("Expected Bob, got %q", got.Name)
	}
}

func TestNew_RejectsMissingPermissionsFileWhenAuthEnabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.AuthEnabled = true
	cfg.AuthJWKSURL = "http://127.0.0.1:1/certs"
	cfg.PermissionsFile = filepath.Join(t.TempDir(), "missing.yml")

	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("Expected error for missing permissions file")
	}
	if _, err := os.Stat(filepath.Join(cfg.FileRoot, "patients.json")); !os.IsNotExist(err) {
		t.Errorf("Expected storage to stay untouched, stat returned %v", err)
	}
}

func TestNew_DefaultConfigOutsideRepoRoot(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	if cfg.AuthEnabled {
		t.Skip("AUTH_ENABLED is set in the environment")
	}

	ctx := context.Background()
	a, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New with auth disabled failed: %v", err)
	}
	defer a.Close(ctx)

	if _, err := a.Service.CreatePatient(ctx, patient.CreatePatientRequest{Name: "Alice", Age: "30", Condition: "Flu"}); err != nil {
		t.Errorf("CreatePatient failed: %v", err)
	}
}

func TestHandler_ServesWithoutAuth(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close(ctx)

	for _, path := range []string{"/health", "/patients", "/dashboard", "/metrics"} {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Serve(ctx); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}
