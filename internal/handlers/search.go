package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/types"
	"github.com/sirupsen/logrus"
)

type SearchHandler struct {
	users store.UserStore
	posts store.PostStore
}

func NewSearchHandler(users store.UserStore, posts store.PostStore) *SearchHandler {
	return &SearchHandler{users: users, posts: posts}
}

// Search matches posts by title/content and users by full name/skills,
// case-insensitive substring.
func (h *SearchHandler) Search(ctx *gin.Context) {
	query := ctx.Query("q")

	if query == "" {
		ctx.JSON(http.StatusOK, gin.H{
			"query": "",
			"posts": []models.Post{},
			"users": []types.ProfileResponse{},
		})
		return
	}

	posts, err := h.posts.Search(ctx.Request.Context(), query)

	if err != nil {
		logrus.WithError(err).Error("Failed to search posts")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	users, err := h.users.Search(ctx.Request.Context(), query)

	if err != nil {
		logrus.WithError(err).Error("Failed to search users")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	profiles := make([]types.ProfileResponse, 0, len(users))

	for i := range users {
		profiles = append(profiles, types.NewProfileResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"query": query,
		"posts": posts,
		"users": profiles,
	})
}
