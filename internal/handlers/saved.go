package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/utils"
	"github.com/sirupsen/logrus"
)

type SavedHandler struct {
	users store.UserStore
	posts store.PostStore
}

func NewSavedHandler(users store.UserStore, posts store.PostStore) *SavedHandler {
	return &SavedHandler{users: users, posts: posts}
}

func (h *SavedHandler) Save(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID := ctx.Param("id")

	if _, err := h.posts.FindByID(ctx.Request.Context(), postID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := h.users.AddSavedPost(ctx.Request.Context(), currentUser.ID, postID); err != nil {
		logrus.WithError(err).Error("Failed to save post")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save post"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Post saved"})
}

func (h *SavedHandler) Unsave(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.users.RemoveSavedPost(ctx.Request.Context(), currentUser.ID, ctx.Param("id")); err != nil {
		logrus.WithError(err).Error("Failed to unsave post")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave post"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Post removed from saved"})
}

func (h *SavedHandler) List(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.users.FindByID(ctx.Request.Context(), currentUser.ID)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	posts, err := h.posts.FindByIDs(ctx.Request.Context(), user.SavedPosts)

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch saved posts")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve saved posts"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"savedPosts": posts})
}
