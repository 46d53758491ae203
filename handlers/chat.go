package handlers

import (
	"context"
	"errors"
	"net/http"

	"framelight/models"
	"framelight/services/chat"
	"framelight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation endpoints.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// HandleChat processes one conversational turn.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := h.Service.HandleTurn(c.Request.Context(), req)
	if err != nil {
		respondChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleGetMessages returns a session's conversation history, oldest first.
// An unknown session yields an empty array, not a 404.
func (h *ChatHandler) HandleGetMessages(c *gin.Context) {
	sessionID := c.Param("session_id")

	history, err := h.Service.History(c.Request.Context(), sessionID)
	if err != nil {
		respondChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// respondChatError maps the chat service error taxonomy onto HTTP statuses.
func respondChatError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var verr *chat.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, verr.Message, "")
		return
	}

	var uerr *chat.UpstreamError
	if errors.As(err, &uerr) {
		logger.Error("assistant responder failure", zap.Error(err))
		status := http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		utils.JSONError(c, status, "Assistant is unavailable, please try again", "")
		return
	}

	logger.Error("chat request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}
