// Package bolt stores automata in a bbolt key/value file.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// BucketAutomata holds one msgpack-encoded document per automaton name.
const BucketAutomata = "automata"

// Store implements ports.AutomatonStore on a bbolt database.
// bbolt serializes writers, so the store is safe for concurrent use.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	s, err := NewFromDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewFromDB creates a store on an open database, creating its bucket if needed.
func NewFromDB(db *bbolt.DB) (*Store, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketAutomata))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Save encodes a as msgpack and writes it under name.
func (s *Store) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	enc, err := msgpack.Marshal(document.FromAutomaton(a))
	if err != nil {
		return fmt.Errorf("failed to encode automaton: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BucketAutomata)).Put([]byte(name), enc)
	})
}

// Load decodes the automaton stored under name.
func (s *Store) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	var doc document.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(BucketAutomata)).Get([]byte(name))
		if v == nil {
			return ports.ErrAutomatonNotFound
		}
		// v is only valid inside the transaction; Unmarshal copies what it keeps.
		if err := msgpack.Unmarshal(v, &doc); err != nil {
			return fmt.Errorf("%w: %w", document.ErrMalformedDocument, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ports.ErrAutomatonNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load automaton %q: %w", name, err)
	}
	return doc.Automaton()
}

// Delete removes name from the bucket.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BucketAutomata)).Delete([]byte(name))
	})
}

// List returns the stored names, which bbolt keeps in byte order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names := []string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BucketAutomata)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list automata: %w", err)
	}
	return names, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
