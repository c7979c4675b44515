package sessionregistry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"mamta-server/internal/domain/chat"
)

type stubStore struct {
	loads   atomic.Int64
	records map[string][]chat.Turn
	loadErr error
}

func (s *stubStore) Load(_ context.Context, username, conversationID string) ([]chat.Turn, bool, error) {
	s.loads.Add(1)
	if s.loadErr != nil {
		return nil, false, s.loadErr
	}
	turns, ok := s.records[username+"/"+conversationID]
	return turns, ok, nil
}

func (s *stubStore) Save(context.Context, string, string, []chat.Turn) error {
	return nil
}

func TestGetOrCreateHydratesFromStore(t *testing.T) {
	store := &stubStore{records: map[string][]chat.Turn{
		"alice@example.com/conv-1": {
			chat.NewUserTurn("hi", "", ""),
			chat.NewModelTurn("hello"),
		},
	}}
	registry := New(store, zerolog.Nop())

	session, err := registry.GetOrCreate(context.Background(), "alice@example.com", "conv-1")
	require.NoError(t, err)

	session.Lock()
	require.Equal(t, 2, session.Len())
	session.Unlock()
}

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	store := &stubStore{}
	registry := New(store, zerolog.Nop())
	ctx := context.Background()

	first, err := registry.GetOrCreate(ctx, "non_logged", "conv-1")
	require.NoError(t, err)
	second, err := registry.GetOrCreate(ctx, "non_logged", "conv-1")
	require.NoError(t, err)

	require.Same(t, first, second)
	require.EqualValues(t, 1, store.loads.Load())
	require.Equal(t, 1, registry.Len())
}

func TestGetOrCreateSeparatesKeys(t *testing.T) {
	registry := New(&stubStore{}, zerolog.Nop())
	ctx := context.Background()

	a, err := registry.GetOrCreate(ctx, "non_logged", "conv-1")
	require.NoError(t, err)
	b, err := registry.GetOrCreate(ctx, "non_logged", "conv-2")
	require.NoError(t, err)
	c, err := registry.GetOrCreate(ctx, "alice@example.com", "conv-1")
	require.NoError(t, err)

	require.NotSame(t, a, b)
	require.NotSame(t, a, c)
	require.Equal(t, 3, registry.Len())
}

func TestGetOrCreateDegradesOnLoadFailure(t *testing.T) {
	store := &stubStore{loadErr: errors.New("read failed")}
	registry := New(store, zerolog.Nop())

	session, err := registry.GetOrCreate(context.Background(), "non_logged", "conv-1")
	require.NoError(t, err)

	session.Lock()
	require.Equal(t, 0, session.Len())
	session.Unlock()
}

func TestConcurrentMissesHydrateOnce(t *testing.T) {
	store := &stubStore{records: map[string][]chat.Turn{
		"non_logged/conv-1": {chat.NewUserTurn("hi", "", "")},
	}}
	registry := New(store, zerolog.Nop())

	const workers = 16
	sessions := make([]*chat.Session, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session, err := registry.GetOrCreate(context.Background(), "non_logged", "conv-1")
			if err != nil {
				t.Errorf("GetOrCreate failed: %v", err)
				return
			}
			sessions[i] = session
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, sessions[0], sessions[i])
	}
	require.EqualValues(t, 1, store.loads.Load())
}
