package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/dashboard"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/memory"
)

func newShellDashboard(t *testing.T) (*dashboard.Dashboard, *patient.Service) {
	t.Helper()
	ctx := context.Background()
	store := patient.NewStore(ctx, patient.NewRepository(memory.New(), storage.DefaultKey))
	svc := patient.NewService(store)
	return dashboard.New(svc), svc
}

func TestRunShell_AddFilterDelete(t *testing.T) {
	dash, svc := newShellDashboard(t)
	input := strings.Join([]string{
		"add Alice, 30, Flu",
		"add Bob, 45, Flu",
		"add Cara, 22, Cold",
		"filter flu",
		"delete 1",
		"quit",
		"add Never, 1, Added",
	}, "\n")

	var out bytes.Buffer
	if err := runShell(context.Background(), dash, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runShell failed: %v", err)
	}

	all := svc.ListPatients(context.Background())
	if len(all) != 2 || all[0].Name != "Alice" || all[1].Name != "Cara" {
		t.Errorf("Expected [Alice Cara], got %+v", all)
	}
	if dash.Filter() != "flu" {
		t.Errorf("Expected filter to stay 'flu', got %q", dash.Filter())
	}
	if !strings.Contains(out.String(), "Page 1 of 1") {
		t.Errorf("Expected page label in output, got:\n%s", out.String())
	}
}

func TestRunShell_ReportsErrorsWithoutMutating(t *testing.T) {
	dash, svc := newShellDashboard(t)
	input := strings.Join([]string{
		"add Alice, abc, Flu",
		"add only-a-name",
		"delete x",
		"delete 3",
		"bogus",
	}, "\n")

	var out bytes.Buffer
	if err := runShell(context.Background(), dash, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runShell failed: %v", err)
	}

	if n := len(svc.ListPatients(context.Background())); n != 0 {
		t.Errorf("Expected no patients, got %d", n)
	}
	if got := strings.Count(out.String(), "error:"); got != 5 {
		t.Errorf("Expected 5 errors, got %d in:\n%s", got, out.String())
	}
}

func TestRunShell_Paging(t *testing.T) {
	dash, _ := newShellDashboard(t)
	var lines []string
	for i := 0; i < 11; i++ {
		lines = append(lines, "add P, 1, Flu")
	}
	lines = append(lines, "next", "next")

	var out bytes.Buffer
	if err := runShell(context.Background(), dash, strings.NewReader(strings.Join(lines, "\n")), &out); err != nil {
		t.Fatalf("runShell failed: %v", err)
	}
	if dash.Page() != 2 {
		t.Errorf("Expected to stop on page 2, got %d", dash.Page())
	}
	if !strings.Contains(out.String(), "Page 2 of 2") {
		t.Errorf("Expected 'Page 2 of 2' in output")
	}
}

func TestParseAdd(t *testing.T) {
	req, err := parseAdd("Mary Ann, 41 , Asthma")
	if err != nil {
		t.Fatalf("parseAdd failed: %v", err)
	}
	p, err := req.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if p.Name != "Mary Ann" || p.Age != 41 || p.Condition != "Asthma" {
		t.Errorf("Unexpected patient %+v", p)
	}

	if _, err := parseAdd("a,b"); err == nil {
		t.Error("Expected usage error")
	}
}

func TestRenderRows_EmptyPage(t *testing.T) {
	out := renderRows(nil, "Page 1 of 1")
	if !strings.Contains(out, "Condition") || !strings.Contains(out, "Page 1 of 1") {
		t.Errorf("Expected headers and label, got:\n%s", out)
	}
}
