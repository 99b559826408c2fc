// Package store persists canonical itineraries. Saves replace the whole
// destination list; the last writer wins.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// Store loads and saves one itinerary per user
type Store interface {
	// Load returns the user's itinerary, or an empty one at version 0
	Load(ctx context.Context, userID uuid.UUID) (models.Itinerary, error)
	// Save replaces the user's itinerary with it
	Save(ctx context.Context, it models.Itinerary) error
	Ping(ctx context.Context) error
}

// MemoryStore keeps itineraries in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]models.Itinerary
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[uuid.UUID]models.Itinerary)}
}

// Load implements Store
func (s *MemoryStore) Load(ctx context.Context, userID uuid.UUID) (models.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.data[userID]
	if !ok {
		return models.Itinerary{UserID: userID, Destinations: []models.Destination{}}, nil
	}
	return it.Clone(), nil
}

// Save implements Store
func (s *MemoryStore) Save(ctx context.Context, it models.Itinerary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it = it.Clone()
	if it.UpdatedAt.IsZero() {
		it.UpdatedAt = time.Now()
	}
	s.data[it.UserID] = it
	return nil
}

// Ping implements Store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// KeyedMutex serializes work per key, so mutations on one user's itinerary
// apply one at a time against the last saved state.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates a KeyedMutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[uuid.UUID]*keyedLock)}
}

// Lock acquires the lock for key and returns its release function
func (k *KeyedMutex) Lock(key uuid.UUID) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
