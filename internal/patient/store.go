package patient

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store is the authoritative in-memory patient list. Every mutation builds
// the next list, persists it, and only then swaps it in, so the in-memory list
// always equals the last snapshot that was written.
type Store struct {
	mu       sync.RWMutex
	repo     RepositoryInterface
	patients []Patient
}

// NewStore loads the snapshot once. Records saved without an ID get one and
// the snapshot is rewritten so the IDs stick.
func NewStore(ctx context.Context, repo RepositoryInterface) *Store {
	patients := repo.Load(ctx)
	if backfillIDs(patients) {
		if err := repo.Save(ctx, patients); err != nil {
			log.Warn().Err(err).Msg("failed to persist backfilled patient IDs")
		}
	}
	log.Info().Int("patients", len(patients)).Msg("patient store loaded")
	return &Store{repo: repo, patients: patients}
}

func backfillIDs(patients []Patient) bool {
	changed := false
	for i := range patients {
		if patients[i].ID == "" {
			patients[i].ID = uuid.NewString()
			changed = true
		}
	}
	return changed
}

// All returns a copy of the list in store order.
func (s *Store) All() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Patient(nil), s.patients...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}

// Get looks a patient up by ID and returns its current index.
func (s *Store) Get(id string) (Patient, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Patient{}, -1, false
	}
	return s.patients[i], i, true
}

func (s *Store) indexOf(id string) int {
	for i, p := range s.patients {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Add appends p and persists. It returns p's index.
func (s *Store) Add(ctx context.Context, p Patient) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Patient, len(s.patients), len(s.patients)+1)
	copy(next, s.patients)
	next = append(next, p)

	if err := s.repo.Save(ctx, next); err != nil {
		return -1, err
	}
	s.patients = next
	return len(next) - 1, nil
}

// RemoveAt deletes the record at the absolute index. An index outside the
// list is rejected and nothing is written.
func (s *Store) RemoveAt(ctx context.Context, index int) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.patients) {
		return Patient{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.patients))
	}
	return s.removeLocked(ctx, index)
}

// Remove deletes the record with the given ID and returns it with the index
// it held.
func (s *Store) Remove(ctx context.Context, id string) (Patient, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return Patient{}, -1, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}
	removed, err := s.removeLocked(ctx, index)
	if err != nil {
		return Patient{}, -1, err
	}
	return removed, index, nil
}

func (s *Store) removeLocked(ctx context.Context, index int) (Patient, error) {
	removed := s.patients[index]
	next := make([]Patient, 0, len(s.patients)-1)
	next = append(next, s.patients[:index]...)
	next = append(next, s.patients[index+1:]...)

	if err := s.repo.Save(ctx, next); err != nil {
		return Patient{}, err
	}
	s.patients = next
	return removed, nil
}
