package patient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/storage"
	"github.com/rs/zerolog/log"
)

// Repository stores the full patient list as one JSON array under a single key.
type Repository struct {
	kv  storage.KV
	key string
}

func NewRepository(kv storage.KV, key string) *Repository {
	if key == "" {
		key = storage.DefaultKey
	}
	return &Repository{kv: kv, key: key}
}

func (r *Repository) Load(ctx context.Context) []Patient {
	b, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		log.Warn().Err(err).Str("key", r.key).Msg("failed to read patient snapshot, starting empty")
		return []Patient{}
	}
	if !ok {
		return []Patient{}
	}

	var patients []Patient
	if err := json.Unmarshal(b, &patients); err != nil {
		log.Warn().Err(err).Str("key", r.key).Msg("corrupt patient snapshot, starting empty")
		return []Patient{}
	}
	if patients == nil {
		return []Patient{}
	}
	return patients
}

func (r *Repository) Save(ctx context.Context, patients []Patient) error {
	if patients == nil {
		patients = []Patient{}
	}
	b, err := json.Marshal(patients)
	if err != nil {
		return fmt.Errorf("failed to encode patients: %w", err)
	}
	if err := r.kv.Put(ctx, r.key, b); err != nil {
		return fmt.Errorf("failed to write patient snapshot: %w", err)
	}
	return nil
}
