package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"mamta-server/internal/config"
	"mamta-server/internal/domain/chat"
	"mamta-server/internal/domain/files"
	"mamta-server/internal/infrastructure/auth"
	"mamta-server/internal/infrastructure/geminiprovider"
	"mamta-server/internal/infrastructure/historystore"
	"mamta-server/internal/infrastructure/logger"
	"mamta-server/internal/infrastructure/observability"
	"mamta-server/internal/infrastructure/sessionregistry"
	"mamta-server/internal/interfaces/httpserver"
)

// @title Mamta Chat API
// @version 1.0
// @description Conversational API fronting the Gemini generativelanguage API with per-user conversation persistence and file attachment relay.
// @BasePath /
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	store, err := historystore.NewFileStore(cfg.ConversationsPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize history store")
	}

	flow, err := auth.NewGoogleFlow(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize google oauth flow")
	}
	tokens := auth.NewTokenService(cfg)

	registry := sessionregistry.New(store, log)
	provider := geminiprovider.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiTimeout)

	chatService := chat.NewService(registry, provider, chat.Options{
		Model:             cfg.GeminiModel,
		SystemInstruction: cfg.SystemPrompt,
		MaxOutputTokens:   cfg.MaxOutputTokens,
	}, log)
	filesService := files.NewService(provider, log)

	httpServer := httpserver.New(cfg, log, chatService, filesService, flow, tokens)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
