package gateway

import "sync"

// Session is one presence record, keyed by the client-declared session id.
type Session struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Connected bool   `json:"connected"`
}

// SessionStore is the process-local presence directory. Entries are created on
// first handshake and flipped between connected/disconnected afterwards; they
// are never removed, so the map is only valid for the lifetime of one process.
// Handlers run on transport goroutines, hence the lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Session)}
}

// Find returns the record for id, if any. Absence is a normal outcome.
func (s *SessionStore) Find(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Save inserts or fully overwrites the record for id. Last write wins; there
// are no merge semantics, callers pass the complete desired record.
func (s *SessionStore) Save(id string, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

// All returns every stored record in unspecified order.
func (s *SessionStore) All() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}

// Len reports the number of stored records.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
