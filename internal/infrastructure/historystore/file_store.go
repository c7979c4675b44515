package historystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"mamta-server/internal/domain/chat"
)

// FileStore persists one JSON file per conversation under
// <base>/<username>/conversation_<id>.json. Writes go to a temporary file in
// the same directory and are renamed into place, so a record is either the
// previous version or the new one, never a torn write.
type FileStore struct {
	basePath string
	log      zerolog.Logger
}

// NewFileStore creates the store root if needed.
func NewFileStore(basePath string, log zerolog.Logger) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("conversations path must be provided")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create conversations directory: %w", err)
	}
	return &FileStore{
		basePath: basePath,
		log:      log.With().Str("component", "history-store").Logger(),
	}, nil
}

// Load reads the persisted history for the key. A missing record reports
// absent with a nil error.
func (s *FileStore) Load(_ context.Context, username, conversationID string) ([]chat.Turn, bool, error) {
	path, err := s.recordPath(username, conversationID)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read conversation record: %w", err)
	}

	var turns []chat.Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, false, fmt.Errorf("decode conversation record: %w", err)
	}
	return turns, true, nil
}

// Save replaces the persisted history for the key in full.
func (s *FileStore) Save(_ context.Context, username, conversationID string, turns []chat.Turn) error {
	path, err := s.recordPath(username, conversationID)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create user partition: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "conversation-*.json")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(turns); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode conversation record: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp record: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persist conversation record: %w", err)
	}

	s.log.Debug().
		Str("username", username).
		Str("conversation_id", conversationID).
		Int("turns", len(turns)).
		Msg("conversation persisted")

	return nil
}

// recordPath validates the key components so a crafted username or
// conversation id cannot escape the store root.
func (s *FileStore) recordPath(username, conversationID string) (string, error) {
	if !safeComponent(username) || !safeComponent(conversationID) {
		return "", fmt.Errorf("invalid history key %q/%q", username, conversationID)
	}
	return filepath.Join(s.basePath, username, "conversation_"+conversationID+".json"), nil
}

func safeComponent(component string) bool {
	if component == "" || component == "." || component == ".." {
		return false
	}
	return !strings.ContainsAny(component, "/\\")
}

// Ensure interface compliance.
var _ chat.HistoryStore = (*FileStore)(nil)
