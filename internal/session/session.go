// Package session keeps per-user conversation state: the active default
// language pair and any text waiting for a language clarification.
package session

import (
	"sync"

	"codeberg.org/snonux/tetraglot/internal/language"
)

// Store is the per-user state consulted around each translation request.
type Store interface {
	ActivePair(userID int64) (language.Pair, bool)
	SetActivePair(userID int64, pair language.Pair)
	ClearActivePair(userID int64)
	SetPendingClarification(userID int64, text string)
	TakePendingClarification(userID int64) (string, bool)
}

// MemoryStore is an in-process Store. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	pairs   map[int64]language.Pair
	pending map[int64]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pairs:   make(map[int64]language.Pair),
		pending: make(map[int64]string),
	}
}

// ActivePair returns the user's default pair, if one is set.
func (s *MemoryStore) ActivePair(userID int64) (language.Pair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pair, ok := s.pairs[userID]
	return pair, ok
}

// SetActivePair replaces the user's default pair.
func (s *MemoryStore) SetActivePair(userID int64, pair language.Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairs[userID] = pair
}

// ClearActivePair switches the user back to automatic mode.
func (s *MemoryStore) ClearActivePair(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pairs, userID)
}

// SetPendingClarification remembers text whose source language could not
// be detected, until the user names it.
func (s *MemoryStore) SetPendingClarification(userID int64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = text
}

// TakePendingClarification removes and returns the remembered text.
func (s *MemoryStore) TakePendingClarification(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.pending[userID]
	if ok {
		delete(s.pending, userID)
	}
	return text, ok
}
