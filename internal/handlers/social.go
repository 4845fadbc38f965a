package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteblog-dev/noteblog/internal/social"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/types"
	"github.com/noteblog-dev/noteblog/internal/utils"
	"github.com/sirupsen/logrus"
)

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type SocialHandler struct {
	social *social.Service
}

func NewSocialHandler(socialService *social.Service) *SocialHandler {
	return &SocialHandler{social: socialService}
}

func (h *SocialHandler) Follow(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	actor, err := h.social.Follow(ctx.Request.Context(), currentUser.ID, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logrus.WithError(err).Error("Failed to follow user")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(actor)})
}

func (h *SocialHandler) Unfollow(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	actor, err := h.social.Unfollow(ctx.Request.Context(), currentUser.ID, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logrus.WithError(err).Error("Failed to unfollow user")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(actor)})
}

func (h *SocialHandler) Like(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	post, err := h.social.ToggleLike(ctx.Request.Context(), currentUser.ID, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			logrus.WithError(err).Error("Failed to toggle like")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *SocialHandler) Comment(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	post, err := h.social.AddComment(ctx.Request.Context(), currentUser.ID, ctx.Param("id"), req.Text)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			logrus.WithError(err).Error("Failed to add comment")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"post": post})
}
