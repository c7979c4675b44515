package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mamta-server/internal/config"
	"mamta-server/internal/infrastructure/auth"
)

const stateCookie = "oauth_state"

// AuthHandler implements the Google login flow endpoints.
type AuthHandler struct {
	cfg    *config.Config
	flow   *auth.GoogleFlow
	tokens *auth.TokenService
	log    zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(cfg *config.Config, flow *auth.GoogleFlow, tokens *auth.TokenService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		flow:   flow,
		tokens: tokens,
		log:    log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles GET /auth/google
// @Summary Start the Google login flow
// @Tags Auth
// @Success 302
// @Failure 503 {object} map[string]string
// @Router /auth/google [get]
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.flow.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google login is not configured"})
		return
	}

	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.flow.AuthCodeURL(state))
}

// Callback handles GET /auth/google/callback
// @Summary Finish the Google login flow
// @Description Exchanges the code, mints a signed identity token and redirects to the front end.
// @Tags Auth
// @Success 302
// @Failure 503 {object} map[string]string
// @Router /auth/google/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	if !h.flow.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google login is not configured"})
		return
	}

	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		h.log.Warn().Msg("oauth state mismatch")
		h.redirectWithError(c, "state_mismatch")
		return
	}

	profile, err := h.flow.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.log.Error().Err(err).Msg("oauth exchange failed")
		h.redirectWithError(c, "login_failed")
		return
	}

	token, err := h.tokens.Mint(*profile)
	if err != nil {
		h.log.Error().Err(err).Msg("mint identity token failed")
		h.redirectWithError(c, "login_failed")
		return
	}

	userData, err := json.Marshal(map[string]string{
		"name":    profile.Name,
		"email":   profile.Email,
		"picture": profile.Picture,
	})
	if err != nil {
		h.redirectWithError(c, "login_failed")
		return
	}

	redirect := fmt.Sprintf("%s?token=%s&user=%s",
		h.cfg.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(string(userData)),
	)
	c.Redirect(http.StatusFound, redirect)
}

func (h *AuthHandler) redirectWithError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.cfg.FrontendURL+"?error="+url.QueryEscape(reason))
}
