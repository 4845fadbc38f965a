package handlers

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/social"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/utils"
	"github.com/sirupsen/logrus"
)

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,min=3"`
	Summary  string `json:"summary"`
	Content  string `json:"content" binding:"required,min=10"`
	Image    string `json:"image"`
	Category string `json:"category" binding:"required"`
}

type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required,min=3"`
	Summary  string `json:"summary"`
	Content  string `json:"content" binding:"required,min=10"`
	Image    string `json:"image"`
	Category string `json:"category" binding:"required"`
}

type PostDetailResponse struct {
	Post          *models.Post  `json:"post"`
	CategoryColor string        `json:"categoryColor"`
	ReadingTime   int           `json:"readingTime"` // minutes
	RelatedPosts  []models.Post `json:"relatedPosts"`
}

const defaultPostImage = "https://via.placeholder.com/800x400"

type PostsHandler struct {
	posts  store.PostStore
	social *social.Service
}

func NewPostsHandler(posts store.PostStore, socialService *social.Service) *PostsHandler {
	return &PostsHandler{posts: posts, social: socialService}
}

func (h *PostsHandler) List(ctx *gin.Context) {
	category := models.Category(ctx.Query("category"))

	if category != "" && !category.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	posts, err := h.posts.All(ctx.Request.Context(), category)

	if err != nil {
		logrus.WithError(err).Error("Failed to list posts")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	topPosts, err := h.posts.TopLiked(ctx.Request.Context(), 3)

	if err != nil {
		logrus.WithError(err).Error("Failed to fetch top posts")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"posts":    posts,
		"topPosts": topPosts,
	})
}

// Get returns the post detail. Every call counts as a view, repeat visits
// and the author's own included.
func (h *PostsHandler) Get(ctx *gin.Context) {
	postID := ctx.Param("id")

	post, err := h.posts.FindByID(ctx.Request.Context(), postID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch post")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	if err := h.social.IncrementView(ctx.Request.Context(), postID); err != nil {
		logrus.WithError(err).WithField("post_id", postID).Warn("Failed to increment views")
	} else {
		post.Views++
	}

	wordCount := len(strings.Fields(post.Content))
	readingTime := int(math.Ceil(float64(wordCount) / 200))

	relatedPosts, err := h.posts.Related(ctx.Request.Context(), post.Category, post.ID, 3)

	if err != nil {
		logrus.WithError(err).Warn("Failed to fetch related posts")
		relatedPosts = []models.Post{}
	}

	ctx.JSON(http.StatusOK, PostDetailResponse{
		Post:          post,
		CategoryColor: post.Category.Color(),
		ReadingTime:   readingTime,
		RelatedPosts:  relatedPosts,
	})
}

func (h *PostsHandler) Create(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category := models.Category(req.Category)

	if !category.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	image := req.Image

	if image == "" {
		image = defaultPostImage
	}

	post := models.Post{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(req.Title),
		Summary:        req.Summary,
		Content:        strings.TrimSpace(req.Content),
		Image:          image,
		Category:       category,
		AuthorUsername: currentUser.Username,
		AuthorName:     currentUser.FullName,
		Likes:          []string{},
		Comments:       []models.Comment{},
		CreatedAt:      time.Now(),
	}

	if err := h.posts.Insert(ctx.Request.Context(), &post); err != nil {
		logrus.WithError(err).Error("Failed to create post")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"post": post})
}

// canEdit allows the post owner and admins.
func canEdit(currentUserRole, currentUsername string, post *models.Post) bool {
	return currentUserRole == models.RoleAdmin || post.AuthorUsername == currentUsername
}

func (h *PostsHandler) Update(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category := models.Category(req.Category)

	if !category.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	post, err := h.posts.FindByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch post")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	if !canEdit(currentUser.Role, currentUser.Username, post) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to edit this post"})
		return
	}

	post.Title = req.Title
	post.Summary = req.Summary
	post.Content = req.Content
	post.Image = req.Image
	post.Category = category

	if err := h.posts.Save(ctx.Request.Context(), post); err != nil {
		logrus.WithError(err).Error("Failed to update post")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *PostsHandler) Delete(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	post, err := h.posts.FindByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			logrus.WithError(err).Error("Failed to fetch post")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	if !canEdit(currentUser.Role, currentUser.Username, post) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post"})
		return
	}

	if err := h.posts.Delete(ctx.Request.Context(), post.ID); err != nil {
		logrus.WithError(err).Error("Failed to delete post")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Categories lists the valid post categories with their badge colors.
func Categories(ctx *gin.Context) {
	categories := make([]gin.H, 0, len(models.Categories))

	for _, category := range models.Categories {
		categories = append(categories, gin.H{
			"name":  category,
			"color": category.Color(),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}
