package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rupeemate/backend/internal/auth"
	"github.com/rupeemate/backend/internal/logger"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat forwards a message to the assistant and returns the saved exchange.
// Generation failures come back as 502 so the client can show the error
// without losing the session.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	username := auth.CurrentUser(c)
	record, err := h.svc.Chat(c.Request.Context(), username, req.Message)
	if err != nil {
		if errorsIsStore(err) {
			respondError(c, err)
			return
		}
		logger.Get().Warn("assistant call failed",
			zap.String("username", username),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant is unavailable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ChatHistory returns recent exchanges, newest first.
func (h *Handler) ChatHistory(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	history, err := h.svc.ChatHistory(c.Request.Context(), auth.CurrentUser(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// AssistantHealth probes the generation backend.
func (h *Handler) AssistantHealth(c *gin.Context) {
	if err := h.svc.AssistantHealth(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"status": "unreachable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
