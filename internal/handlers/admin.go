package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/types"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	users    store.UserStore
	posts    store.PostStore
	messages store.MessageStore
}

func NewAdminHandler(users store.UserStore, posts store.PostStore, messages store.MessageStore) *AdminHandler {
	return &AdminHandler{users: users, posts: posts, messages: messages}
}

// Dashboard aggregates everything the admin page renders.
func (h *AdminHandler) Dashboard(ctx *gin.Context) {
	posts, err := h.posts.All(ctx.Request.Context(), "")

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch posts")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		return
	}

	users, err := h.users.All(ctx.Request.Context())

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch users")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		return
	}

	messages, err := h.messages.All(ctx.Request.Context())

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch messages")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		return
	}

	profiles := make([]types.UserResponse, 0, len(users))

	for i := range users {
		profiles = append(profiles, types.NewUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"posts":    posts,
		"users":    profiles,
		"messages": messages,
	})
}
