// Package boltseq persists ordered value logs in a BoltDB file and exposes
// their contents as lazy iterators, making a disk-backed bucket usable as a
// pipeline source.
package boltseq

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/flgo/flgo"
	"github.com/flgo/flgo/iterators"
)

func init() {
	// common dynamic value kinds that may travel inside a Record
	gob.Register(int(0))
	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register(string(""))
	gob.Register(bool(false))
	gob.Register([]interface{}{})
}

// Record is the stored envelope of one appended value.
type Record struct {
	ID    string
	Value interface{}
}

// Store is a BoltDB backed collection of named, append-ordered value logs.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the BoltDB file at the given path and acquires its file lock.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "boltseq: open database")
	}
	return &Store{db: db}, nil
}

// Close the database and release the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores the given values at the end of the named log.
// Every value receives a unique record ID.
func (s *Store) Append(name string, values ...interface{}) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return errors.Wrap(err, "boltseq: ensure bucket")
		}

		for _, v := range values {
			seq, err := bucket.NextSequence()
			if err != nil {
				return errors.Wrap(err, "boltseq: next sequence")
			}

			raw, err := encode(Record{ID: uuid.NewV4().String(), Value: v})
			if err != nil {
				return err
			}

			if err := bucket.Put(seqToKey(seq), raw); err != nil {
				return errors.Wrap(err, "boltseq: put record")
			}
		}
		return nil
	})
}

// Values returns a lazy iterator over the values of the named log, in append
// order. The bucket is read from a goroutine behind a pipe, so the caller
// pulls one element at a time and may stop early by closing the iterator.
// A missing log yields no values. The iterator is single use.
func (s *Store) Values(name string) flgo.Iterator[interface{}] {
	in, out := iterators.Pipe[interface{}]()

	go func() {
		defer in.Close()

		err := s.db.View(func(tx *bolt.Tx) error {
			bucket := tx.Bucket([]byte(name))
			if bucket == nil {
				return nil
			}

			return bucket.ForEach(func(_, raw []byte) error {
				var rec Record
				if err := decode(raw, &rec); err != nil {
					return err
				}
				if !in.Value(rec.Value) {
					return iterators.ErrClosed // receiver stopped listening
				}
				return nil
			})
		})
		if err != nil && err != iterators.ErrClosed {
			in.Error(err)
		}
	}()

	return out
}

func encode(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, errors.Wrap(err, "boltseq: encode record")
	}
	return buf.Bytes(), nil
}

func decode(raw []byte, rec *Record) error {
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(rec); err != nil {
		return errors.Wrap(err, "boltseq: decode record")
	}
	return nil
}

func seqToKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
