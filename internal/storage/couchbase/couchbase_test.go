package couchbase

import (
	"strings"
	"testing"
	"time"
)

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(Config{ConnString: "couchbase://localhost", Username: "admin", Password: "secret"})
	if err == nil {
		t.Fatal("Expected error for missing bucket")
	}
	if !strings.Contains(err.Error(), "bucket") {
		t.Errorf("Expected bucket error, got %v", err)
	}
}

func TestNew_UnreachableCluster(t *testing.T) {
	tests := []struct {
		name       string
		connString string
	}{
		{"unsupported scheme", "http://127.0.0.1:1"},
		{"nothing listening", "couchbase://127.0.0.1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(Config{
				ConnString: tt.connString,
				Username:   "admin",
				Password:   "secret",
				Bucket:     "patients",
				Timeout:    200 * time.Millisecond,
			})
			if err == nil {
				store.Close()
				t.Fatal("Expected error for unreachable cluster")
			}
		})
	}
}
