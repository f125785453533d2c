// Package boltdb implements the client storage interfaces on BoltDB.
package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketAuth = []byte("auth")

// Storage represents the BoltDB storage implementation for the client.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAuth); err != nil {
			return fmt.Errorf("failed to create auth bucket: %w", err)
		}
		return nil
	})
}
