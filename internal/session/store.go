package session

import (
	"sync"

	"session-auth/internal/logger"
)

// Store maps session ids to user ids for the life of the process.
// Ids are only ever minted by CreateSession; callers cannot choose them.
// A user may hold any number of sessions at once.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]string
	newID    func() (string, error)
}

// NewStore returns an empty store. The composition root owns it and
// hands the same instance to every strategy that needs it.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]string),
		newID:    GenerateID,
	}
}

// CreateSession records a new session for userID and returns its id.
// It reports false for an empty user id.
func (s *Store) CreateSession(userID string) (string, bool) {
	if userID == "" {
		return "", false
	}

	id, err := s.newID()
	if err != nil {
		logger.Error("session id generation failed", map[string]any{
			"error": err.Error(),
		})
		return "", false
	}

	s.mu.Lock()
	s.sessions[id] = userID
	s.mu.Unlock()

	return id, true
}

// UserIDForSession returns the user bound to sessionID.
func (s *Store) UserIDForSession(sessionID string) (string, bool) {
	if sessionID == "" {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.sessions[sessionID]
	return userID, ok
}

// DestroySession forgets sessionID. It reports whether a session was removed.
func (s *Store) DestroySession(sessionID string) bool {
	if sessionID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return false
	}
	delete(s.sessions, sessionID)
	return true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
