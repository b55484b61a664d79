package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketCaptures = []byte("captures")
	bucketMeta     = []byte("meta")
	keyFamilyIDs   = []byte("family_ids")
)

// BoltStore implements Store using BoltDB.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens or creates a BoltDB database.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketCaptures, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
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

// Capture keys are big-endian sequence numbers so cursor order is age order.
func captureKey(id uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, id)
}

func (s *BoltStore) SaveCapture(c *Capture) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketCaptures)
		}
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		c.ID = id
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		return b.Put(captureKey(id), data)
	})
}

func (s *BoltStore) GetCapture(id uint64) (*Capture, error) {
	var c Capture
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketCaptures)
		}
		data := b.Get(captureKey(id))
		if data == nil {
			return fmt.Errorf("capture %d: %w", id, ErrNotFound)
		}
		return json.Unmarshal(data, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *BoltStore) DeleteCapture(id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketCaptures)
		}
		key := captureKey(id)
		if b.Get(key) == nil {
			return fmt.Errorf("capture %d: %w", id, ErrNotFound)
		}
		return b.Delete(key)
	})
}

func (s *BoltStore) ListCaptures(limit int) ([]*Capture, error) {
	var captures []*Capture
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(captures) >= limit {
				break
			}
			var cp Capture
			if err := json.Unmarshal(v, &cp); err != nil {
				return err
			}
			captures = append(captures, &cp)
		}
		return nil
	})
	return captures, err
}

func (s *BoltStore) CountCaptures() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	})
	return n, err
}

func (s *BoltStore) Prune(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCaptures)
		if b == nil {
			return nil
		}
		// Walk back past the newest keep entries; everything older goes.
		c := b.Cursor()
		k, _ := c.Last()
		for i := 0; i < keep && k != nil; i++ {
			k, _ = c.Prev()
		}
		if k == nil {
			return nil
		}
		var stale [][]byte
		for ; k != nil; k, _ = c.Prev() {
			stale = append(stale, append([]byte(nil), k...))
		}
		for _, key := range stale {
			if err := b.Delete(key); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

func (s *BoltStore) SaveFamilyIDs(ids map[string]uint16) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMeta)
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketMeta)
		}
		data, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		return b.Put(keyFamilyIDs, data)
	})
}

func (s *BoltStore) FamilyIDs() (map[string]uint16, error) {
	ids := make(map[string]uint16)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMeta)
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucketMeta)
		}
		data := b.Get(keyFamilyIDs)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &ids)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
