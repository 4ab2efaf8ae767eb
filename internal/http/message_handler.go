package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"
)

// MessageHandler mantiene dependencias para mensajes de contacto.
type MessageHandler struct {
	logger   *zap.Logger
	msgServ  *service.MessageService
	messages repository.MessageRepository
}

func NewMessageHandler(logger *zap.Logger, msgServ *service.MessageService, messages repository.MessageRepository) *MessageHandler {
	return &MessageHandler{
		logger:   logger,
		msgServ:  msgServ,
		messages: messages,
	}
}

// Submit maneja POST /contact.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg, err := h.msgServ.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		case errors.Is(err, service.ErrInvalidMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message"})
			return
		default:
			h.logger.Error("submit message failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit message"})
			return
		}
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// List maneja GET /admin/messages.
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// ListUnread maneja GET /admin/messages/unread.
func (h *MessageHandler) ListUnread(c *gin.Context) {
	messages, err := h.messages.ListUnread(c.Request.Context())
	if err != nil {
		h.logger.Error("list unread messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// MarkRead maneja POST /admin/messages/:id/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messages.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		h.logger.Error("mark message read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not mark message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete maneja DELETE /admin/messages/:id.
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("delete message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
