package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mamta-server/internal/domain/chat"
	"mamta-server/internal/infrastructure/auth"
	"mamta-server/internal/infrastructure/metrics"
	"mamta-server/internal/infrastructure/observability"
	"mamta-server/internal/interfaces/httpserver/dto"
	"mamta-server/internal/interfaces/httpserver/responses"
)

// ChatHandler exposes the conversation endpoint.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Create handles POST /
// @Summary Send a chat message
// @Description Runs one conversation turn and returns the model reply.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router / [post]
func (h *ChatHandler) Create(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := auth.UsernameFromContext(c)

	ctx, span := observability.StartChatSpan(c.Request.Context(), username, req.ConversationID, req.FileURI != "")
	defer span.End()

	result, err := h.service.Chat(ctx, chat.Params{
		Username:       username,
		ConversationID: req.ConversationID,
		Prompt:         req.Prompt,
		FileURI:        req.FileURI,
		FileMimeType:   req.FileMimeType,
	})
	if err != nil {
		observability.RecordError(span, err)
		metrics.RecordChatTurn("error")
		responses.HandleError(c, err, "chat turn failed")
		return
	}

	metrics.RecordChatTurn("ok")
	c.JSON(http.StatusOK, dto.ChatResponse{
		Bot:            result.Bot,
		ConversationID: result.ConversationID,
	})
}
