package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/sirupsen/logrus"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactHandler struct {
	messages store.MessageStore
}

func NewContactHandler(messages store.MessageStore) *ContactHandler {
	return &ContactHandler{messages: messages}
}

func (h *ContactHandler) Create(ctx *gin.Context) {
	var req ContactRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	message := models.Message{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Message,
		CreatedAt: time.Now(),
	}

	if err := h.messages.Insert(ctx.Request.Context(), &message); err != nil {
		logrus.WithError(err).Error("Failed to store contact message")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}
