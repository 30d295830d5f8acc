// Package history persists collided subject pairings in a bbolt database.
package history

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketPairings = "pairings"

// ErrNotFound is returned when no pairing has the requested sequence number.
var ErrNotFound = errors.New("pairing not found")

// Pairing is one collision of two subjects.
type Pairing struct {
	Seq   int       `json:"-"`
	Left  string    `json:"left"`
	Right string    `json:"right"`
	At    time.Time `json:"at"`
}

// Store is a bbolt-backed pairing log.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPairings))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Add appends a pairing and returns its sequence number.
func (s *Store) Add(p Pairing) (int, error) {
	value, err := json.Marshal(p)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPairings))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), value)
	})
	return int(seq), err
}

// Pairing returns the pairing with sequence number seq.
func (s *Store) Pairing(seq int) (Pairing, error) {
	var p Pairing
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketPairings)).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNotFound
		}
		return decode(seq, v, &p)
	})
	return p, err
}

// Recent returns up to limit pairings, newest first.
func (s *Store) Recent(limit int) ([]Pairing, error) {
	var out []Pairing
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketPairings)).Cursor()
		for k, v := c.Last(); k != nil && len(out) < limit; k, v = c.Prev() {
			var p Pairing
			if err := decode(int(unmarshalSeq(k)), v, &p); err != nil {
				return err
			}
			out = append(out, p)
		}
		return nil
	})
	return out, err
}

func decode(seq int, v []byte, p *Pairing) error {
	if err := json.Unmarshal(v, p); err != nil {
		return fmt.Errorf("decode pairing %d: %w", seq, err)
	}
	p.Seq = seq
	return nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
