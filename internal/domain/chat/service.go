package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mamta-server/internal/domain/genai"
	"mamta-server/internal/utils/platformerrors"
)

// Service runs one conversation turn end to end.
type Service interface {
	Chat(ctx context.Context, params Params) (*Result, error)
}

// Params describes one inbound turn. ConversationID may be empty, in which
// case a fresh conversation is started. Prompt may be empty when a file
// reference is supplied with the turn.
type Params struct {
	Username       string
	ConversationID string
	Prompt         string
	FileURI        string
	FileMimeType   string
}

// Result carries the model reply and the conversation the turn belongs to.
type Result struct {
	Bot            string
	ConversationID string
}

// Options carries the upstream call settings taken from configuration.
type Options struct {
	Model             string
	SystemInstruction string
	MaxOutputTokens   int
}

// DefaultService implements Service on top of the session registry and the
// Gemini provider.
type DefaultService struct {
	registry Registry
	provider genai.Provider
	opts     Options
	log      zerolog.Logger
}

// NewService creates the chat service.
func NewService(registry Registry, provider genai.Provider, opts Options, log zerolog.Logger) Service {
	return &DefaultService{
		registry: registry,
		provider: provider,
		opts:     opts,
		log:      log.With().Str("component", "chat-service").Logger(),
	}
}

// Chat resolves the session, invokes the model with the prior history plus
// the new turn, and appends and persists both turns on success.
//
// Failure policy: the history is touched only after the model call succeeds.
// A failed upstream call leaves neither an in-memory nor a persisted orphan
// user turn. A failed flush keeps both turns in memory and surfaces a
// storage error; the next successful turn persists them.
func (s *DefaultService) Chat(ctx context.Context, params Params) (*Result, error) {
	userTurn := NewUserTurn(params.Prompt, params.FileURI, params.FileMimeType)
	if strings.TrimSpace(params.Prompt) == "" && !userTurn.HasFile() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "prompt or file reference is required", nil)
	}

	conversationID := params.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	session, err := s.registry.GetOrCreate(ctx, params.Username, conversationID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	prior := session.Snapshot()
	req := genai.GenerateContentRequest{
		Model:    s.opts.Model,
		Contents: append(FormatHistory(prior), ContentFromTurn(userTurn)),
		GenerationConfig: &genai.GenerationConfig{
			MaxOutputTokens: s.opts.MaxOutputTokens,
		},
	}
	if s.opts.SystemInstruction != "" {
		req.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.TextPart(s.opts.SystemInstruction)},
		}
	}

	resp, err := s.provider.GenerateContent(ctx, req)
	if err != nil {
		s.log.Error().Err(err).
			Str("conversation_id", conversationID).
			Msg("model call failed")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeUpstream, "model call failed", err)
	}

	bot := resp.Text()
	if bot == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeUpstream, "model returned no candidates", nil)
	}

	session.Append(userTurn)
	session.Append(NewModelTurn(bot))

	if err := session.Flush(ctx); err != nil {
		s.log.Error().Err(err).
			Str("username", params.Username).
			Str("conversation_id", conversationID).
			Msg("persist conversation failed")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeStorage, "persist conversation failed", err)
	}

	s.log.Debug().
		Str("conversation_id", conversationID).
		Int("turns", session.Len()).
		Msg("turn completed")

	return &Result{Bot: bot, ConversationID: conversationID}, nil
}
