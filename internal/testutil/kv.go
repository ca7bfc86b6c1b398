package testutil

import (
	"context"
	"sync"
)

// FlakyKV is an in-memory key-value store whose reads and writes can be made
// to fail. It counts writes so tests can assert that nothing was persisted.
type FlakyKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	GetErr error
	PutErr error
	Puts   int
}

func NewFlakyKV() *FlakyKV {
	return &FlakyKV{data: make(map[string][]byte)}
}

func (k *FlakyKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.GetErr != nil {
		return nil, false, k.GetErr
	}
	v, ok := k.data[key]
	return v, ok, nil
}

func (k *FlakyKV) Put(ctx context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.PutErr != nil {
		return k.PutErr
	}
	k.data[key] = append([]byte(nil), value...)
	k.Puts++
	return nil
}

// Raw returns what is stored under key, or nil.
func (k *FlakyKV) Raw(key string) []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.data[key]
}

// Seed stores value without counting it as a write.
func (k *FlakyKV) Seed(key string, value []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.data[key] = value
}

func (k *FlakyKV) Close() error { return nil }
