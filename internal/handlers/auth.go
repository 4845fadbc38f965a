package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noteblog-dev/noteblog/internal/auth"
	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/types"
	"github.com/noteblog-dev/noteblog/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required,min=2"`
	Bio      string `json:"bio"`
	Skills   string `json:"skills"` // comma separated
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateSettingsRequest struct {
	FullName     string `json:"fullName" binding:"required,min=2"`
	Email        string `json:"email" binding:"omitempty,email"`
	Bio          string `json:"bio"`
	Skills       string `json:"skills"`
	ProfileImage string `json:"profileImage"`
	Github       string `json:"github"`
	Linkedin     string `json:"linkedin"`
	Website      string `json:"website"`
	NewPassword  string `json:"newPassword" binding:"omitempty,min=6"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

type AuthHandler struct {
	users store.UserStore
}

func NewAuthHandler(users store.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

func parseSkills(skills string) []string {
	if strings.TrimSpace(skills) == "" {
		return []string{}
	}

	parts := strings.Split(skills, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func setAuthCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.users.FindByUsername(ctx.Request.Context(), req.Username); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already in use"})
		return
	}

	if _, err := h.users.FindByEmail(ctx.Request.Context(), req.Email); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already in use"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		logrus.WithError(err).Error("Failed to hash password")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		ID:            uuid.NewString(),
		Username:      req.Username,
		PasswordHash:  string(passwordHash),
		Email:         req.Email,
		FullName:      strings.TrimSpace(req.FullName),
		Role:          models.RoleUser,
		Bio:           req.Bio,
		Skills:        parseSkills(req.Skills),
		Followers:     []string{},
		Following:     []string{},
		SavedPosts:    []string{},
		Notifications: []models.Notification{},
		CreatedAt:     time.Now(),
	}

	if err := h.users.Insert(ctx.Request.Context(), &newUser); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already in use"})
			return
		}
		logrus.WithError(err).Error("Failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Username, newUser.Role)

	if err != nil {
		logrus.WithError(err).Error("Failed to generate JWT")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24)

	ctx.JSON(http.StatusCreated, gin.H{"user": types.NewUserResponse(&newUser)})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.FindByUsername(ctx.Request.Context(), req.Username)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
			return
		}
		logrus.WithError(err).Error("Failed to fetch user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username, user.Role)

	if err != nil {
		logrus.WithError(err).Error("Failed to generate JWT")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setAuthCookie(ctx, token, 60*60*24)

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	setAuthCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}

func (h *AuthHandler) UpdateSettings(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateSettingsRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Always re-fetch before mutating; the context snapshot is display-only.
	user, err := h.users.FindByID(ctx.Request.Context(), currentUser.ID)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if req.Email != "" {
		newEmail := strings.ToLower(strings.TrimSpace(req.Email))

		if newEmail != user.Email {
			if _, err := h.users.FindByEmail(ctx.Request.Context(), newEmail); err == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
				return
			}
		}

		user.Email = newEmail
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Bio = req.Bio
	user.Skills = parseSkills(req.Skills)
	user.ProfileImage = req.ProfileImage
	user.Social = models.SocialLinks{
		Github:   req.Github,
		Linkedin: req.Linkedin,
		Website:  req.Website,
	}

	if req.NewPassword != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)

		if err != nil {
			logrus.WithError(err).Error("Failed to hash new password")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		user.PasswordHash = string(passwordHash)
	}

	if err := h.users.Save(ctx.Request.Context(), user); err != nil {
		logrus.WithError(err).Error("Failed to update user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    types.NewUserResponse(user),
	})
}
