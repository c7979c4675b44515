package auth

import (
	"context"
	"errors"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"mamta-server/internal/config"
)

// GoogleFlow implements the login handshake with Google. The ID token inside
// the exchange response is validated against Google's JWKS before any claim
// is trusted.
type GoogleFlow struct {
	oauth *oauth2.Config
	jwks  *keyfunc.JWKS
	log   zerolog.Logger
}

// NewGoogleFlow initializes JWKS fetching when the login flow is configured.
// With no client credentials the flow stays disabled and the auth routes
// answer 503.
func NewGoogleFlow(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*GoogleFlow, error) {
	flowLog := log.With().Str("component", "google-oauth").Logger()
	if !cfg.OAuthEnabled() {
		flowLog.Warn().Msg("google oauth is not configured; login routes disabled")
		return &GoogleFlow{log: flowLog}, nil
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			flowLog.Error().Err(err).Msg("jwks refresh error")
		},
	}

	jwks, err := keyfunc.Get(cfg.GoogleJWKSURL, options)
	if err != nil {
		return nil, err
	}

	return &GoogleFlow{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.OAuthCallbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		jwks: jwks,
		log:  flowLog,
	}, nil
}

// Enabled reports whether the login flow is configured.
func (g *GoogleFlow) Enabled() bool {
	return g != nil && g.oauth != nil
}

// Ready indicates whether the JWKS cache is available.
func (g *GoogleFlow) Ready() bool {
	if !g.Enabled() {
		return true
	}
	return g.jwks != nil
}

// AuthCodeURL builds the consent page redirect for the given state.
func (g *GoogleFlow) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for tokens and returns the validated
// profile from the ID token.
func (g *GoogleFlow) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("exchange response has no id_token")
	}

	idToken, err := jwt.Parse(rawIDToken, g.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(g.oauth.ClientID),
	)
	if err != nil || !idToken.Valid {
		return nil, errors.New("invalid id token")
	}

	claims, ok := idToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid id token claims")
	}

	profile := &Profile{}
	profile.ID, _ = claims["sub"].(string)
	profile.Name, _ = claims["name"].(string)
	profile.Email, _ = claims["email"].(string)
	profile.Picture, _ = claims["picture"].(string)
	if profile.Email == "" {
		return nil, errors.New("id token has no email")
	}

	return profile, nil
}
