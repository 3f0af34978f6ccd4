package cart

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketPrefix = "cart:"

// BoltBackend stores each browser's keys in its own bucket of a bbolt file.
type BoltBackend struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltBackend, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cart file %s failed: %w", path, err)
	}
	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}

func (b *BoltBackend) Scope(browserID string) Storage {
	return &boltStorage{db: b.db, bucket: []byte(bucketPrefix + browserID)}
}

type boltStorage struct {
	db     *bolt.DB
	bucket []byte
}

func (s *boltStorage) Get(key string) (value string, ok bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bk := tx.Bucket(s.bucket)
		if bk == nil {
			return nil
		}
		if v := bk.Get([]byte(key)); v != nil {
			value, ok = string(v), true
		}
		return nil
	})
	return value, ok, err
}

func (s *boltStorage) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return bk.Put([]byte(key), []byte(value))
	})
}
