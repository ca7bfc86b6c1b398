package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveConditions(t *testing.T) {
	c := NewCollector()

	c.ObserveConditions(chart.Compute([]string{"Flu", "Flu", "Cold"}))
	if got := testutil.ToFloat64(c.stored); got != 3 {
		t.Errorf("Expected 3 stored, got %v", got)
	}
	if got := testutil.ToFloat64(c.byCondition.WithLabelValues("Flu")); got != 2 {
		t.Errorf("Expected Flu=2, got %v", got)
	}

	c.ObserveConditions(chart.Compute([]string{"Cold"}))
	if n := testutil.CollectAndCount(c.byCondition); n != 1 {
		t.Errorf("Expected stale conditions to be dropped, got %d series", n)
	}
}

func TestHandlerExposesGauges(t *testing.T) {
	c := NewCollector()
	c.ObserveConditions(chart.Compute([]string{"Asthma"}))
	c.CountMutation("create")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`patients_stored 1`,
		`patients_by_condition{condition="Asthma"} 1`,
		`patient_mutations_total{operation="create"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("Expected %q in metrics output", want)
		}
	}
}
