package couchbase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"
)

// Config describes the cluster and bucket holding the snapshot documents.
type Config struct {
	ConnString string
	Username   string
	Password   string
	Bucket     string
	Timeout    time.Duration
}

// Store keeps each key as a document in the bucket's default collection.
type Store struct {
	cluster    *gocb.Cluster
	collection *gocb.Collection
}

// New connects to the cluster and waits for the bucket to be ready.
func New(cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("couchbase bucket required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cluster, err := gocb.Connect(cfg.ConnString, gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cluster: %w", err)
	}

	bucket := cluster.Bucket(cfg.Bucket)
	if err := bucket.WaitUntilReady(timeout, nil); err != nil {
		_ = cluster.Close(nil)
		return nil, fmt.Errorf("bucket %q is not accessible: %w", cfg.Bucket, err)
	}

	return &Store{
		cluster:    cluster,
		collection: bucket.DefaultCollection(),
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := s.collection.Get(key, &gocb.GetOptions{Context: ctx})
	if errors.Is(err, gocb.ErrDocumentNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get document %s: %w", key, err)
	}
	var raw json.RawMessage
	if err := res.Content(&raw); err != nil {
		return nil, false, fmt.Errorf("failed to parse document content: %w", err)
	}
	return raw, true, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.collection.Upsert(key, json.RawMessage(value), &gocb.UpsertOptions{Context: ctx})
	if err != nil {
		return fmt.Errorf("failed to upsert document %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.cluster.Close(nil)
}
