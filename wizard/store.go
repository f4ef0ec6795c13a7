package wizard

import "sync"

// SessionStore keeps one wizard session per user, in process. Opening a new
// wizard discards any previous draft, matching the one-draft-at-a-time flow.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Open starts a fresh session for the user, replacing any existing one.
func (st *SessionStore) Open(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := NewSession()
	st.sessions[userID] = s
	return s
}

func (st *SessionStore) Get(userID string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	return s, ok
}

// Drop discards the user's session, e.g. after a successful generation or a
// cancel.
func (st *SessionStore) Drop(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
