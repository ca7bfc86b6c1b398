package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	root := t.TempDir()
	s, err := New(root)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "patients"); err != nil || ok {
		t.Fatalf("Expected missing key, ok=%v err=%v", ok, err)
	}

	if err := s.Put(ctx, "patients", []byte(`[{"name":"Alice","age":30,"condition":"Flu"}]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := s.Get(ctx, "patients")
	if err != nil || !ok {
		t.Fatalf("Expected stored value, ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"name":"Alice","age":30,"condition":"Flu"}]` {
		t.Errorf("Unexpected value: %s", got)
	}

	if _, err := os.Stat(filepath.Join(root, "patients.json")); err != nil {
		t.Errorf("Expected patients.json on disk: %v", err)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 1 {
		t.Errorf("Expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestStore_RejectsTraversalKeys(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	testCases := []string{"", "  ", "../escape", "nested/key", `win\key`}
	for _, key := range testCases {
		t.Run(key, func(t *testing.T) {
			if err := s.Put(context.Background(), key, []byte(`[]`)); err == nil {
				t.Errorf("Expected error for key %q", key)
			}
		})
	}
}
