package memory

import (
	"context"
	"testing"
)

func TestStore_GetMissingKey(t *testing.T) {
	s := New()

	v, ok, err := s.Get(context.Background(), "patients")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok {
		t.Error("Expected key to be missing")
	}
	if v != nil {
		t.Errorf("Expected nil value, got %q", v)
	}
}

func TestStore_PutOverwritesAndCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	in := []byte(`[{"name":"Alice"}]`)
	if err := s.Put(ctx, "patients", in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	in[0] = 'X'

	got, ok, err := s.Get(ctx, "patients")
	if err != nil || !ok {
		t.Fatalf("Expected stored value, ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"name":"Alice"}]` {
		t.Errorf("Stored value was mutated through caller slice: %q", got)
	}

	if err := s.Put(ctx, "patients", []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, _, _ = s.Get(ctx, "patients")
	if string(got) != `[]` {
		t.Errorf("Expected overwrite to '[]', got %q", got)
	}
}
