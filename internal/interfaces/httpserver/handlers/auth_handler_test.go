package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mamta-server/internal/config"
	"mamta-server/internal/infrastructure/auth"
	"mamta-server/internal/interfaces/httpserver/handlers"
)

func setupAuthTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	flow, err := auth.NewGoogleFlow(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGoogleFlow failed: %v", err)
	}
	tokens := auth.NewTokenService(cfg)

	handler := handlers.NewAuthHandler(cfg, flow, tokens, zerolog.Nop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/auth/google", handler.Login)
	r.GET("/auth/google/callback", handler.Callback)
	return r
}

func TestAuthHandler_LoginUnconfigured(t *testing.T) {
	router := setupAuthTestRouter(t, &config.Config{FrontendURL: "http://localhost:5173"})

	req, _ := http.NewRequest("GET", "/auth/google", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 without oauth credentials, got %d", w.Code)
	}
}

func TestAuthHandler_CallbackUnconfigured(t *testing.T) {
	router := setupAuthTestRouter(t, &config.Config{FrontendURL: "http://localhost:5173"})

	req, _ := http.NewRequest("GET", "/auth/google/callback?state=x&code=y", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 without oauth credentials, got %d", w.Code)
	}
}
