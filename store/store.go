// Package store persists serialized records in a goleveldb key/value
// store. It is a consumer of the serialization layer, not part of it:
// records decide their own byte layout, the store only moves the
// resulting buffers to and from disk.
package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/muoyuongwei/CED-RA/internal/logging"
	"github.com/muoyuongwei/CED-RA/serial"
)

// ErrNotFound is returned when a key has no entry.
var ErrNotFound = errors.New("store: no entry found")

// Record is anything the store can persist: it names its own key and
// serializes itself through the engine.
type Record interface {
	serial.Serializable
	Key() []byte
}

// Store wraps a single leveldb database. Like every other handle in
// this module it is not synchronized; leveldb itself tolerates
// concurrent use, the Store adds nothing on top.
type Store struct {
	db   *leveldb.DB
	pver uint32
}

// Open opens (or creates) the database at path. The protocol version
// is threaded through to every record serialization, uninterpreted.
func Open(path string, pver uint32) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		logging.L.Err(err).Str("path", path).Msg("error opening store")
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db, pver: pver}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put serializes rec and writes it under its key.
func (s *Store) Put(rec Record) error {
	var buf serial.Stream
	if err := rec.Serialize(&buf, s.pver); err != nil {
		logging.L.Err(err).Msg("error serialising record")
		return err
	}
	if err := s.db.Put(rec.Key(), buf.Bytes(), nil); err != nil {
		logging.L.Err(err).Msg("error inserting record")
		return err
	}
	return nil
}

// PutBatch writes all records in one leveldb batch.
func (s *Store) PutBatch(recs []Record) error {
	batch := new(leveldb.Batch)
	for _, rec := range recs {
		var buf serial.Stream
		if err := rec.Serialize(&buf, s.pver); err != nil {
			logging.L.Err(err).Msg("error serialising record")
			return err
		}
		batch.Put(rec.Key(), buf.TakeBytes())
	}
	if err := s.db.Write(batch, nil); err != nil {
		logging.L.Err(err).Msg("error inserting batch")
		return err
	}
	return nil
}

// Get loads the entry for rec.Key and deserializes it into rec.
func (s *Store) Get(rec Record) error {
	data, err := s.db.Get(rec.Key(), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logging.L.Err(err).Msg("error reading record")
		return err
	}
	return rec.Deserialize(serial.NewStreamBytes(data), s.pver)
}

// Delete removes the entry for rec.Key, if any.
func (s *Store) Delete(rec Record) error {
	return s.db.Delete(rec.Key(), nil)
}
