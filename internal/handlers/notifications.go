package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteblog-dev/noteblog/internal/notify"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/utils"
	"github.com/sirupsen/logrus"
)

type NotificationsHandler struct {
	users  store.UserStore
	notify *notify.Service
}

func NewNotificationsHandler(users store.UserStore, notifyService *notify.Service) *NotificationsHandler {
	return &NotificationsHandler{users: users, notify: notifyService}
}

func (h *NotificationsHandler) List(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, gin.H{
		"notifications": user.Notifications,
		"unread":        user.UnreadNotifications(),
	})
}

// Read marks a notification read and returns its link for the redirect. An
// unknown notification ID is not an error; the link is just empty.
func (h *NotificationsHandler) Read(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	link, err := h.notify.MarkRead(ctx.Request.Context(), currentUser.ID, ctx.Param("id"))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logrus.WithError(err).Error("Failed to mark notification read")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"link": link})
}
