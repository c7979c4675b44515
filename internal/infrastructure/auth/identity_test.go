package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"mamta-server/internal/config"
)

func newTestTokenService(ttl time.Duration) *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  ttl,
	})
}

func TestMintParseRoundTrip(t *testing.T) {
	tokens := newTestTokenService(time.Hour)

	signed, err := tokens.Mint(Profile{
		ID:    "google-123",
		Name:  "Alice",
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	profile, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if profile.Email != "alice@example.com" {
		t.Errorf("Expected email alice@example.com, got %q", profile.Email)
	}
	if profile.ID != "google-123" {
		t.Errorf("Expected id google-123, got %q", profile.ID)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := newTestTokenService(time.Hour).Mint(Profile{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	other := NewTokenService(&config.Config{JWTSecret: "different-secret", TokenTTL: time.Hour})
	if _, err := other.Parse(signed); err == nil {
		t.Error("Expected parse to fail with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tokens := newTestTokenService(-time.Minute)

	signed, err := tokens.Mint(Profile{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if _, err := tokens.Parse(signed); err == nil {
		t.Error("Expected parse to fail for an expired token")
	}
}

func middlewareUsername(t *testing.T, tokens *TokenService, authorization string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(tokens.Middleware())

	var got string
	r.GET("/", func(c *gin.Context) {
		got = UsernameFromContext(c)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	return got
}

func TestMiddlewareResolvesAuthenticatedUser(t *testing.T) {
	tokens := newTestTokenService(time.Hour)
	signed, err := tokens.Mint(Profile{ID: "g-1", Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	if got := middlewareUsername(t, tokens, "Bearer "+signed); got != "alice@example.com" {
		t.Errorf("Expected username alice@example.com, got %q", got)
	}
}

func TestMiddlewareFallsBackToAnonymous(t *testing.T) {
	tokens := newTestTokenService(time.Hour)

	cases := map[string]string{
		"no header":        "",
		"malformed header": "Token abc",
		"garbage token":    "Bearer not-a-jwt",
	}
	for name, header := range cases {
		if got := middlewareUsername(t, tokens, header); got != AnonymousUser {
			t.Errorf("%s: expected %q, got %q", name, AnonymousUser, got)
		}
	}

	expired := newTestTokenService(-time.Minute)
	signed, err := expired.Mint(Profile{Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if got := middlewareUsername(t, tokens, "Bearer "+signed); got != AnonymousUser {
		t.Errorf("Expected expired token to resolve to %q, got %q", AnonymousUser, got)
	}
}
