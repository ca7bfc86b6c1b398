// Package storage selects the durable key-value backend that holds the patient
// snapshot.
package storage

import (
	"context"
	"fmt"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/couchbase"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/file"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/memory"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/postgres"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/s3"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage/sqlite"
	"github.com/rs/zerolog/log"
)

// KV is a durable key-value store. Get reports ok=false for a missing key.
// Put overwrites the whole value; concurrent writers race and the last write
// wins.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Driver identifies a KV backend.
type Driver string

const (
	DriverMemory    Driver = "memory"
	DriverFile      Driver = "file"
	DriverSQLite    Driver = "sqlite"
	DriverPostgres  Driver = "postgres"
	DriverS3        Driver = "s3"
	DriverCouchbase Driver = "couchbase"
)

// DefaultKey is the single key the patient snapshot lives under.
const DefaultKey = "patients"

// Config selects and configures a driver.
type Config struct {
	Driver      Driver
	FileRoot    string
	SQLitePath  string
	DatabaseURL string
	S3          s3.Config
	Couchbase   couchbase.Config
}

var (
	_ KV = (*memory.Store)(nil)
	_ KV = (*file.Store)(nil)
	_ KV = (*sqlite.Store)(nil)
	_ KV = (*postgres.Store)(nil)
	_ KV = (*s3.Store)(nil)
	_ KV = (*couchbase.Store)(nil)
)

// Open returns the KV implementation named by cfg.Driver (default file).
func Open(ctx context.Context, cfg Config) (KV, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverFile
	}
	log.Info().Str("driver", string(driver)).Msg("opening snapshot storage")

	switch driver {
	case DriverMemory:
		return memory.New(), nil
	case DriverFile:
		return file.New(cfg.FileRoot)
	case DriverSQLite:
		return sqlite.New(cfg.SQLitePath)
	case DriverPostgres:
		return postgres.New(ctx, cfg.DatabaseURL)
	case DriverS3:
		return s3.New(ctx, cfg.S3)
	case DriverCouchbase:
		return couchbase.New(cfg.Couchbase)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
