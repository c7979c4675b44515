package chat

import (
	"context"
	"sync"
)

// HistoryStore persists one conversation history per (username,
// conversationID) pair. Absence on load is not an error.
type HistoryStore interface {
	Load(ctx context.Context, username, conversationID string) ([]Turn, bool, error)
	Save(ctx context.Context, username, conversationID string, turns []Turn) error
}

// Registry hands out live sessions, hydrating them from the HistoryStore on
// first use within a process lifetime.
type Registry interface {
	GetOrCreate(ctx context.Context, username, conversationID string) (*Session, error)
}

// Session is the in-memory history buffer for one conversation. The embedded
// mutex serializes turns for one conversation; distinct conversations never
// contend. Callers hold the lock for the whole turn, including the upstream
// call and the flush, so interleaved turns cannot tear the history.
type Session struct {
	username       string
	conversationID string
	store          HistoryStore

	mu    sync.Mutex
	turns []Turn
}

// NewSession builds a session seeded with previously persisted turns.
func NewSession(username, conversationID string, seed []Turn, store HistoryStore) *Session {
	return &Session{
		username:       username,
		conversationID: conversationID,
		store:          store,
		turns:          append([]Turn(nil), seed...),
	}
}

// Username returns the owning identity partition.
func (s *Session) Username() string { return s.username }

// ConversationID returns the conversation identifier.
func (s *Session) ConversationID() string { return s.conversationID }

// Lock serializes access to the session for one full turn.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Snapshot returns a copy of the current history. Callers must hold the lock.
func (s *Session) Snapshot() []Turn {
	return append([]Turn(nil), s.turns...)
}

// Len returns the number of turns. Callers must hold the lock.
func (s *Session) Len() int { return len(s.turns) }

// Append adds a turn to the in-memory history only. Callers must hold the
// lock and are responsible for flushing afterwards.
func (s *Session) Append(turn Turn) {
	s.turns = append(s.turns, turn)
}

// Flush writes the current history through to the store. Callers must hold
// the lock. A failed flush leaves the in-memory history intact.
func (s *Session) Flush(ctx context.Context) error {
	return s.store.Save(ctx, s.username, s.conversationID, s.turns)
}
