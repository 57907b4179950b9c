package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketSnapshots = "snapshots"
	keyCurrent      = "current"
)

// Bolt is a bbolt-backed Store. The snapshot lives in one bucket under a
// fixed key; writes are atomic at the transaction level.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file and its bucket.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSnapshots))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating snapshot bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Save writes the blob under the current-snapshot key.
func (s *Bolt) Save(blob []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSnapshots)).Put([]byte(keyCurrent), blob)
	})
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Load returns a copy of the current snapshot blob.
func (s *Bolt) Load() ([]byte, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketSnapshots)).Get([]byte(keyCurrent))
		if v == nil {
			return ErrNotFound
		}
		blob = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// Close closes the underlying database.
func (s *Bolt) Close() error {
	return s.db.Close()
}
