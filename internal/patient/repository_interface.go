package patient

import "context"

// RepositoryInterface defines the contract for the durable patient snapshot
type RepositoryInterface interface {
	// Load never fails: a missing or unreadable snapshot is an empty list.
	Load(ctx context.Context) []Patient
	// Save overwrites the whole snapshot with one write.
	Save(ctx context.Context, patients []Patient) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
