package handlers

import (
	"github.com/rs/zerolog"

	"mamta-server/internal/config"
	"mamta-server/internal/domain/chat"
	"mamta-server/internal/domain/files"
	"mamta-server/internal/infrastructure/auth"
)

// Provider bundles the HTTP handlers.
type Provider struct {
	Chat *ChatHandler
	File *FileHandler
	Auth *AuthHandler
}

// NewProvider wires the handlers with their services.
func NewProvider(
	cfg *config.Config,
	chatService chat.Service,
	filesService files.Service,
	flow *auth.GoogleFlow,
	tokens *auth.TokenService,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat: NewChatHandler(chatService, log),
		File: NewFileHandler(filesService, log),
		Auth: NewAuthHandler(cfg, flow, tokens, log),
	}
}
