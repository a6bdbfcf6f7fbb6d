package kvstore

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("storefront")

// BoltStore persists to a local bbolt file, the server-side analogue of the
// storefront's browser storage.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) (string, bool, error) {
	var val []byte
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(boltBucket).Get([]byte(key)); v != nil {
			val = append([]byte(nil), v...)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return string(val), found, nil
}

func (s *BoltStore) Set(_ context.Context, key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
}

func (s *BoltStore) Delete(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
}

func (s *BoltStore) Close() error { return s.db.Close() }
