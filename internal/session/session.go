// Package session keeps per-browsing-session state that is never persisted:
// the exercises a user marked as done.
package session

import (
	"alcyxob/fitlog/internal/domain"
	"sync"

	"github.com/google/uuid"
)

// Store maps session ids to their completion markers.
type Store struct {
	mu       sync.Mutex
	sessions map[string]domain.CompletionSet
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]domain.CompletionSet)}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Mark records k as done for the session.
func (s *Store) Mark(sessionID string, k domain.CompletionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sessions[sessionID]
	if !ok {
		set = domain.CompletionSet{}
		s.sessions[sessionID] = set
	}
	set.Mark(k)
}

// Completed returns a snapshot of the session's markers. Unknown sessions
// yield an empty set.
func (s *Store) Completed(sessionID string) domain.CompletionSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sessions[sessionID]
	if !ok {
		return domain.CompletionSet{}
	}
	return set.Clone()
}

// End drops everything recorded for the session.
func (s *Store) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
