package apiserver

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// BoltStore persists ingested records in a bbolt file, one bucket per kind.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the store file and its buckets.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, k := range kinds {
			if _, err := tx.CreateBucketIfNotExists([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Append(kind string, record json.RawMessage) (int, error) {
	var count int
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(kind))
		if b == nil {
			return fmt.Errorf("unknown kind %q", kind)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		if err := b.Put(key, record); err != nil {
			return err
		}
		// Records are append-only and Reset recreates the bucket, so the
		// sequence is also the record count.
		count = int(seq)
		return nil
	})
	return count, err
}

func (s *BoltStore) Counts() (map[string]int, error) {
	counts := make(map[string]int, len(kinds))
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, k := range kinds {
			b := tx.Bucket([]byte(k))
			if b == nil {
				continue
			}
			counts[k] = b.Stats().KeyN
		}
		return nil
	})
	return counts, err
}

func (s *BoltStore) Reset() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, k := range kinds {
			if err := tx.DeleteBucket([]byte(k)); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) Close() error { return s.db.Close() }
