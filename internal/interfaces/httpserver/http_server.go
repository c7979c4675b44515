package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	swaggerdocs "mamta-server/docs/swagger"
	"mamta-server/internal/config"
	"mamta-server/internal/domain/chat"
	"mamta-server/internal/domain/files"
	"mamta-server/internal/infrastructure/auth"
	"mamta-server/internal/interfaces/httpserver/dto"
	"mamta-server/internal/interfaces/httpserver/handlers"
	"mamta-server/internal/interfaces/httpserver/middlewares"
	"mamta-server/internal/interfaces/httpserver/routes"
)

// HTTPServer wraps the gin engine with graceful shutdown helpers.
type HTTPServer struct {
	cfg         *config.Config
	engine      *gin.Engine
	log         zerolog.Logger
	handlerProv *handlers.Provider
	routeProv   *routes.Provider
}

// New constructs the HTTP server with default middleware and routes.
func New(
	cfg *config.Config,
	log zerolog.Logger,
	chatService chat.Service,
	filesService files.Service,
	flow *auth.GoogleFlow,
	tokens *auth.TokenService,
) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	swaggerdocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())
	engine.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	engine.Use(middlewares.RequestIDMiddleware())
	engine.Use(middlewares.MetricsMiddleware())

	handlerProvider := handlers.NewProvider(cfg, chatService, filesService, flow, tokens, log)
	routeProvider := routes.NewProvider(handlerProvider)

	// Register public routes (greeting, health checks, metrics, swagger)
	// without identity resolution
	registerPublicRoutes(engine, cfg, flow)

	// Identity resolution runs before the API routes; it never rejects,
	// it only picks the history partition
	engine.Use(tokens.Middleware())

	routeProvider.Register(engine)

	return &HTTPServer{
		cfg:         cfg,
		engine:      engine,
		log:         log,
		handlerProv: handlerProvider,
		routeProv:   routeProvider,
	}
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func registerPublicRoutes(engine *gin.Engine, cfg *config.Config, flow *auth.GoogleFlow) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.GreetingResponse{
			Message: "Hi!, I am Mamta, a chatbot that helps you in your pregnancy.",
		})
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.GET("/health/auth", func(c *gin.Context) {
		if flow == nil || flow.Ready() {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "initializing"})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
