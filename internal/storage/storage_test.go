package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpen_LocalDrivers(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "memory", cfg: Config{Driver: DriverMemory}},
		{name: "file", cfg: Config{Driver: DriverFile, FileRoot: filepath.Join(dir, "files")}},
		{name: "default is file", cfg: Config{FileRoot: filepath.Join(dir, "default")}},
		{name: "sqlite", cfg: Config{Driver: DriverSQLite, SQLitePath: filepath.Join(dir, "patients.db")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			kv, err := Open(ctx, tc.cfg)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer kv.Close()

			if err := kv.Put(ctx, DefaultKey, []byte(`[]`)); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			got, ok, err := kv.Get(ctx, DefaultKey)
			if err != nil || !ok || string(got) != `[]` {
				t.Errorf("Expected '[]', got %q ok=%v err=%v", got, ok, err)
			}
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Config{Driver: "redis"}); err == nil {
		t.Error("Expected error for unknown driver")
	}
}

func TestOpen_S3RequiresBucket(t *testing.T) {
	if _, err := Open(context.Background(), Config{Driver: DriverS3}); err == nil {
		t.Error("Expected error when bucket is missing")
	}
}
