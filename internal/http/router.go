package http

import (
	"net/http"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/auth"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/dashboard"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/metrics"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/telemetry"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const serviceName = "patient-dashboard"

// Deps are the collaborators the router serves. Only Patients is required.
// A nil Verifier turns authentication off.
type Deps struct {
	Patients       patient.ServiceInterface
	Dashboard      *dashboard.Dashboard
	Verifier       auth.TokenVerifier
	Permissions    auth.Permissions
	Metrics        *telemetry.Metrics
	Prometheus     *metrics.Collector
	AllowedOrigins []string
}

// SetupRouter initializes all routes for the application. The returned
// handler applies CORS ahead of routing so preflight requests are answered
// for every path.
func SetupRouter(d Deps) http.Handler {
	patientHandler := patient.NewHandler(d.Patients)

	var authMetrics auth.MetricsRecorder
	var requestMetrics RequestRecorder
	if d.Metrics != nil {
		authMetrics = d.Metrics
		requestMetrics = d.Metrics
	}
	guard := auth.Guard(d.Verifier, d.Permissions, authMetrics)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware(serviceName))
	r.Use(RequestLogger(requestMetrics))

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"` + serviceName + `"}`))
	}).Methods("GET")

	if d.Prometheus != nil {
		r.Handle("/metrics", d.Prometheus.Handler()).Methods("GET")
	}

	r.Handle("/patients/stats/conditions",
		guard(auth.PermPatientView, http.HandlerFunc(patientHandler.ConditionStats)),
	).Methods("GET")

	r.Handle("/patients",
		guard(auth.PermPatientView, http.HandlerFunc(patientHandler.ListPatients)),
	).Methods("GET")

	r.Handle("/patients",
		guard(auth.PermPatientCreate, http.HandlerFunc(patientHandler.CreatePatient)),
	).Methods("POST")

	r.Handle("/patients/index/{index}",
		guard(auth.PermPatientDelete, http.HandlerFunc(patientHandler.DeletePatientAt)),
	).Methods("DELETE")

	r.Handle("/patients/{id}",
		guard(auth.PermPatientView, http.HandlerFunc(patientHandler.GetPatient)),
	).Methods("GET")

	r.Handle("/patients/{id}",
		guard(auth.PermPatientDelete, http.HandlerFunc(patientHandler.DeletePatient)),
	).Methods("DELETE")

	if d.Dashboard != nil {
		dashboard.NewHandler(d.Dashboard).Register(r, guard)
	}

	return CORSMiddleware(d.AllowedOrigins)(r)
}
