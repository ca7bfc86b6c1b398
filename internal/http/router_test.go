package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/dashboard"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/memory"
	"github.com/gorilla/mux"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type mockRequestRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (m *mockRequestRecorder) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, recordedRequest{method, route, statusCode})
}

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	store := patient.NewStore(context.Background(), patient.NewRepository(memory.New(), storage.DefaultKey))
	svc := patient.NewService(store)
	return Deps{
		Patients:       svc,
		Dashboard:      dashboard.New(svc),
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

func TestSetupRouter_Routes(t *testing.T) {
	router := SetupRouter(newTestDeps(t))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"list", http.MethodGet, "/patients", "", http.StatusOK},
		{"create", http.MethodPost, "/patients", `{"name":"Alice","age":30,"condition":"Flu"}`, http.StatusCreated},
		{"create invalid", http.MethodPost, "/patients", `{"name":"Alice","age":"x","condition":"Flu"}`, http.StatusBadRequest},
		{"stats", http.MethodGet, "/patients/stats/conditions", "", http.StatusOK},
		{"get unknown", http.MethodGet, "/patients/does-not-exist", "", http.StatusNotFound},
		{"delete index out of range", http.MethodDelete, "/patients/index/9", "", http.StatusNotFound},
		{"delete index not a number", http.MethodDelete, "/patients/index/abc", "", http.StatusBadRequest},
		{"dashboard", http.MethodGet, "/dashboard", "", http.StatusOK},
		{"metrics disabled", http.MethodGet, "/metrics", "", http.StatusNotFound},
		{"wrong method", http.MethodPut, "/patients", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("%s %s: expected %d, got %d (%s)", tt.method, tt.path, tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSetupRouter_StatsIsNotAnID(t *testing.T) {
	router := SetupRouter(newTestDeps(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients/stats/conditions", nil))
	if !strings.Contains(rec.Body.String(), `"chart"`) {
		t.Errorf("Expected condition stats body, got %s", rec.Body.String())
	}
}

func TestCORSMiddleware(t *testing.T) {
	handler := CORSMiddleware([]string{"http://allowed.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://allowed.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Header().Get("Access-Control-Allow-Origin") != "http://allowed.example" {
			t.Errorf("Expected origin to be echoed, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
		}
		if rec.Code != http.StatusTeapot {
			t.Errorf("Expected request to reach handler, got %d", rec.Code)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Errorf("Expected no allow-origin header, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", rec.Code)
		}
	})
}

func TestRequestLogger_RecordsRouteTemplate(t *testing.T) {
	rec := &mockRequestRecorder{}
	r := mux.NewRouter()
	r.Use(RequestLogger(rec))
	r.HandleFunc("/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods("GET")

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/patients/abc", nil))

	if len(rec.requests) != 1 {
		t.Fatalf("Expected 1 recorded request, got %d", len(rec.requests))
	}
	got := rec.requests[0]
	if got.route != "/patients/{id}" || got.status != http.StatusNotFound || got.method != http.MethodGet {
		t.Errorf("Unexpected observation %+v", got)
	}
}
