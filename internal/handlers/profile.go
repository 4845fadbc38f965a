package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/types"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	users store.UserStore
	posts store.PostStore
}

func NewProfileHandler(users store.UserStore, posts store.PostStore) *ProfileHandler {
	return &ProfileHandler{users: users, posts: posts}
}

func (h *ProfileHandler) Get(ctx *gin.Context) {
	user, err := h.users.FindByUsername(ctx.Request.Context(), ctx.Param("username"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch profile")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		}
		return
	}

	posts, err := h.posts.FindByAuthor(ctx.Request.Context(), user.Username)

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch user posts")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile": types.NewProfileResponse(user),
		"posts":   posts,
	})
}
