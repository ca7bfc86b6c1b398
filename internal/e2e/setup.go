// Package e2e drives the full HTTP stack (router, auth, service, store and
// a real storage driver) through an httptest server.
package e2e

import (
	"context"
	"crypto/rsa"
	"net/http/httptest"
	"testing"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/auth"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/dashboard"
	httpserver "github.com/WailSalutem-Health-Care/patient-dashboard/internal/http"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/metrics"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/testutil"
)

// TestServer represents a complete E2E test environment
type TestServer struct {
	Server        *httptest.Server
	KV            storage.KV
	MockPublisher *testutil.MockPublisher
	Prometheus    *metrics.Collector
	PrivateKey    *rsa.PrivateKey
}

// SetupE2ETest starts the API over kv with auth enabled. Tokens must be
// signed with the returned server's PrivateKey.
func SetupE2ETest(t *testing.T, kv storage.KV) *TestServer {
	t.Helper()

	mockPublisher := testutil.NewMockPublisher()
	collector := metrics.NewCollector()

	perms, err := auth.LoadPermissions("../../permissions.yml")
	if err != nil {
		t.Fatalf("Failed to load permissions: %v", err)
	}

	privateKey, publicKey := testutil.GenerateTestKeyPair(t)
	verifier := auth.NewVerifier(
		auth.Config{Enabled: true, Issuer: testutil.TestIssuer},
		auth.StaticKeys{testutil.TestKeyID: publicKey},
	)

	store := patient.NewStore(context.Background(), patient.NewRepository(kv, storage.DefaultKey))
	service := patient.NewService(store,
		patient.WithPublisher(mockPublisher),
		patient.WithConditionObserver(collector),
	)

	router := httpserver.SetupRouter(httpserver.Deps{
		Patients:       service,
		Dashboard:      dashboard.New(service),
		Verifier:       verifier,
		Permissions:    perms,
		Prometheus:     collector,
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	return &TestServer{
		Server:        httptest.NewServer(router),
		KV:            kv,
		MockPublisher: mockPublisher,
		Prometheus:    collector,
		PrivateKey:    privateKey,
	}
}

// Cleanup cleans up all test resources
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()
	ts.Server.Close()
}

// GenerateAdminToken generates an ADMIN token for this test server
func (ts *TestServer) GenerateAdminToken(t *testing.T) string {
	t.Helper()
	return testutil.GenerateAdminToken(t, ts.PrivateKey)
}

// GenerateViewerToken generates a VIEWER token for this test server
func (ts *TestServer) GenerateViewerToken(t *testing.T) string {
	t.Helper()
	return testutil.GenerateViewerToken(t, ts.PrivateKey)
}

// NewClient creates a new HTTP test client for this server with the given token
func (ts *TestServer) NewClient(token string) *testutil.HTTPTestClient {
	return testutil.NewHTTPTestClient(ts.Server.URL, token)
}
