package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the chat service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"mamta-server"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Gemini upstream
	GeminiAPIKey    string        `env:"GOOGLE_API_KEY"`
	GeminiBaseURL   string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiModel     string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	GeminiTimeout   time.Duration `env:"GEMINI_TIMEOUT" envDefault:"75s"`
	SystemPrompt    string        `env:"SYSTEM_PROMPT" envDefault:"You are a chatbot that helps pregnant women. (The woman is already pregnant so please don't ask unnecessary questions)."`
	MaxOutputTokens int           `env:"MAX_OUTPUT_TOKENS" envDefault:"1000"`

	// Conversation persistence
	ConversationsPath string `env:"CONVERSATIONS_PATH" envDefault:"./conversations"`

	// Google OAuth login flow
	GoogleClientID     string        `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `env:"GOOGLE_CLIENT_SECRET"`
	OAuthCallbackURL   string        `env:"OAUTH_CALLBACK_URL" envDefault:"http://localhost:5000/auth/google/callback"`
	GoogleJWKSURL      string        `env:"GOOGLE_JWKS_URL" envDefault:"https://www.googleapis.com/oauth2/v3/certs"`
	JWTSecret          string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
	TokenTTL           time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	FrontendURL        string        `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// Origins allowed to call the API with credentials.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,https://mamta-blond.vercel.app"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}

	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 1000
	}

	if cfg.GeminiTimeout <= 0 {
		cfg.GeminiTimeout = 75 * time.Second
	}

	return cfg, nil
}

// OAuthEnabled reports whether the Google login flow is configured.
func (c *Config) OAuthEnabled() bool {
	return strings.TrimSpace(c.GoogleClientID) != "" && strings.TrimSpace(c.GoogleClientSecret) != ""
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
