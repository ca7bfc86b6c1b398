package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "patients.db")
	ctx := context.Background()

	s, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok, err := s.Get(ctx, "patients"); err != nil || ok {
		t.Fatalf("Expected missing key, ok=%v err=%v", ok, err)
	}
	if err := s.Put(ctx, "patients", []byte(`[{"name":"Bob"}]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(ctx, "patients", []byte(`[{"name":"Cara"}]`)); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(ctx, "patients")
	if err != nil || !ok {
		t.Fatalf("Expected stored value, ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"name":"Cara"}]` {
		t.Errorf("Expected last write to win, got %s", got)
	}
	if reopened.Path() != path {
		t.Errorf("Expected path %s, got %s", path, reopened.Path())
	}
}
