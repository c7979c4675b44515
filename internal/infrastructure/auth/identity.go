package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"mamta-server/internal/config"
)

// AnonymousUser is the shared partition for unauthenticated callers. All
// anonymous histories land under this one username; only the conversation id
// separates them. Kept for compatibility with existing persisted records.
const AnonymousUser = "non_logged"

// usernameKey is the gin context key the chat handler reads.
const usernameKey = "username"

// Profile is the identity carried in the signed token.
type Profile struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

// TokenService mints and validates the HS256 tokens handed to the front end
// by the OAuth callback.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates the token service from configuration.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Mint signs a short-lived identity token with the original claim set.
func (t *TokenService) Mint(profile Profile) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    profile.ID,
		"name":  profile.Name,
		"email": profile.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates a token string and extracts the identity.
func (t *TokenService) Parse(tokenString string) (*Profile, error) {
	token, err := jwt.Parse(tokenString,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid identity token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid identity claims")
	}

	email, _ := claims["email"].(string)
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("identity token has no email")
	}

	id, _ := claims["id"].(string)
	name, _ := claims["name"].(string)
	return &Profile{ID: id, Name: name, Email: email}, nil
}

// Middleware resolves the request identity. Authenticated callers are keyed
// by their email; everything else, including expired or malformed tokens,
// degrades to the shared anonymous partition. The middleware never rejects a
// request, matching the original front end's optional login.
func (t *TokenService) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := AnonymousUser
		if raw := bearerToken(c.GetHeader("Authorization")); raw != "" {
			if profile, err := t.Parse(raw); err == nil {
				username = profile.Email
			}
		}
		c.Set(usernameKey, username)
		c.Next()
	}
}

// UsernameFromContext returns the identity resolved by the middleware.
func UsernameFromContext(c *gin.Context) string {
	if username := c.GetString(usernameKey); username != "" {
		return username
	}
	return AnonymousUser
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
