package cache

import (
	"sync"

	"github.com/bassista/tourdesk/internal/repository"
)

var _ AppStore = (*Store)(nil)

// Store keeps an in-memory copy of the session document.
type Store struct {
	mu         sync.RWMutex
	data       repository.SessionDocument
	dirty      bool  // true if cache changed since last persist
	lastUpdate int64 // cache's metadata.lastUpdate
}

// NewStore creates a store seeded with doc.
func NewStore(doc repository.SessionDocument) *Store {
	doc.ApplyDefaults()
	return &Store{data: doc.Clone(), lastUpdate: doc.Metadata.LastUpdate}
}

func (s *Store) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

// IsDirty returns true if cache has unsaved changes.
func (s *Store) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func (s *Store) ClearDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

func (s *Store) GetLastUpdate() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}

func (s *Store) SetLastUpdate(ts int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUpdate = ts
}

// Snapshot returns a copy of the cached document.
func (s *Store) Snapshot() (repository.SessionDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone(), nil
}

// Replace swaps the cached document and clears the dirty flag.
func (s *Store) Replace(doc repository.SessionDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.ApplyDefaults()
	s.data = doc.Clone()
	s.lastUpdate = doc.Metadata.LastUpdate
	s.dirty = false
	return nil
}

func (s *Store) Value(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data.Values[key]
	return v, ok
}

// SetValue stores key and marks the cache dirty when the value changed.
func (s *Store) SetValue(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.data.Values[key]; ok && cur == value {
		return
	}
	s.data.Values[key] = value
	s.dirty = true
}

// DeleteValue removes key and marks the cache dirty when it existed.
func (s *Store) DeleteValue(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.Values[key]; !ok {
		return
	}
	delete(s.data.Values, key)
	s.dirty = true
}
