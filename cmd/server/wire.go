//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"mamta-server/internal/config"
	"mamta-server/internal/domain/chat"
	"mamta-server/internal/domain/files"
	"mamta-server/internal/domain/genai"
	"mamta-server/internal/infrastructure/auth"
	"mamta-server/internal/infrastructure/geminiprovider"
	"mamta-server/internal/infrastructure/historystore"
	"mamta-server/internal/infrastructure/logger"
	"mamta-server/internal/infrastructure/sessionregistry"
	"mamta-server/internal/interfaces/httpserver"
)

var chatSet = wire.NewSet(
	newHistoryStore,
	wire.Bind(new(chat.HistoryStore), new(*historystore.FileStore)),
	newSessionRegistry,
	wire.Bind(new(chat.Registry), new(*sessionregistry.Registry)),
	newGeminiClient,
	wire.Bind(new(genai.Provider), new(*geminiprovider.Client)),
	newChatService,
	files.NewService,
	auth.NewTokenService,
	newGoogleFlow,
)

// BuildApplication demonstrates how to assemble the chat service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		chatSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newHistoryStore(cfg *config.Config, log zerolog.Logger) (*historystore.FileStore, error) {
	return historystore.NewFileStore(cfg.ConversationsPath, log)
}

func newSessionRegistry(store *historystore.FileStore, log zerolog.Logger) *sessionregistry.Registry {
	return sessionregistry.New(store, log)
}

func newGeminiClient(cfg *config.Config) *geminiprovider.Client {
	return geminiprovider.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiTimeout)
}

func newChatService(registry chat.Registry, provider *geminiprovider.Client, cfg *config.Config, log zerolog.Logger) chat.Service {
	return chat.NewService(registry, provider, chat.Options{
		Model:             cfg.GeminiModel,
		SystemInstruction: cfg.SystemPrompt,
		MaxOutputTokens:   cfg.MaxOutputTokens,
	}, log)
}

func newGoogleFlow(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.GoogleFlow, error) {
	return auth.NewGoogleFlow(ctx, cfg, log)
}
