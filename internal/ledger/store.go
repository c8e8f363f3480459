// Package ledger holds the in-memory deal store: a mapping from dense
// integer deal ids (starting at 0) to deal records, plus a single monotonic
// counter. Ids are never reused and records are never destroyed; terminal
// deals stay queryable.
package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/escrow-desk/backend/internal/models"
)

var ErrNotFound = errors.New("deal not found")

type Store struct {
	mu     sync.RWMutex
	deals  map[uint64]*models.Deal
	nextID uint64
}

func NewStore() *Store {
	return &Store{deals: make(map[uint64]*models.Deal)}
}

// Create assigns the next sequence number to d, stores it and returns the id.
func (s *Store) Create(d *models.Deal) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	now := time.Now()
	stored := *d
	stored.ID = id
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.deals[id] = &stored

	d.ID = id
	d.CreatedAt = now
	d.UpdatedAt = now
	return id
}

// Get returns a snapshot copy of the deal. Mutating the returned value does
// not touch the stored record.
func (s *Store) Get(id uint64) (models.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.deals[id]
	if !ok {
		return models.Deal{}, ErrNotFound
	}
	return *d, nil
}

// Update applies fn to the stored record under the write lock. If fn returns
// an error the record is left untouched.
func (s *Store) Update(id uint64, fn func(*models.Deal) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deals[id]
	if !ok {
		return ErrNotFound
	}

	scratch := *d
	if err := fn(&scratch); err != nil {
		return err
	}
	scratch.UpdatedAt = time.Now()
	*d = scratch
	return nil
}

// Count returns the number of deals ever created, which is also the next id
// to be assigned.
func (s *Store) Count() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}
