package sessionregistry

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"mamta-server/internal/domain/chat"
	"mamta-server/internal/infrastructure/metrics"
)

// Registry caches live sessions per (username, conversationID) for the
// process lifetime. Entries are never evicted; the scale this service targets
// makes unbounded growth acceptable. Concurrent misses for one key hydrate
// from the store exactly once.
type Registry struct {
	store chat.HistoryStore
	log   zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*chat.Session
	group    singleflight.Group
}

// New creates an empty registry backed by the given store.
func New(store chat.HistoryStore, log zerolog.Logger) *Registry {
	return &Registry{
		store:    store,
		log:      log.With().Str("component", "session-registry").Logger(),
		sessions: make(map[string]*chat.Session),
	}
}

// GetOrCreate returns the live session for the key, loading persisted history
// on the first reference. A store read failure degrades to an empty history
// rather than failing the request.
func (r *Registry) GetOrCreate(ctx context.Context, username, conversationID string) (*chat.Session, error) {
	key := username + "/" + conversationID

	r.mu.Lock()
	if session, ok := r.sessions[key]; ok {
		r.mu.Unlock()
		return session, nil
	}
	r.mu.Unlock()

	created, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.Lock()
		if session, ok := r.sessions[key]; ok {
			r.mu.Unlock()
			return session, nil
		}
		r.mu.Unlock()

		seed, found, err := r.store.Load(ctx, username, conversationID)
		if err != nil {
			r.log.Warn().Err(err).
				Str("username", username).
				Str("conversation_id", conversationID).
				Msg("history load failed, starting with empty history")
			seed = nil
		} else if found {
			r.log.Debug().
				Str("username", username).
				Str("conversation_id", conversationID).
				Int("turns", len(seed)).
				Msg("session hydrated from store")
		}

		session := chat.NewSession(username, conversationID, seed, r.store)

		r.mu.Lock()
		r.sessions[key] = session
		metrics.SetActiveSessions(len(r.sessions))
		r.mu.Unlock()

		return session, nil
	})
	if err != nil {
		return nil, err
	}
	return created.(*chat.Session), nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Ensure interface compliance.
var _ chat.Registry = (*Registry)(nil)
