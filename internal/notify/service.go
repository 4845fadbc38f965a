package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/sirupsen/logrus"
)

// Service manages per-user notification feeds. Delivery is best effort:
// Notify never returns an error, so a failed write can never abort the
// follow/like/comment that triggered it.
type Service struct {
	users store.UserStore
}

func NewService(users store.UserStore) *Service {
	return &Service{users: users}
}

// Notify front-inserts a notification into the target user's feed and trims
// it to models.MaxNotifications, evicting the oldest entries. A missing
// target user or a store failure is logged and swallowed.
func (s *Service) Notify(ctx context.Context, targetUserID string, notifType models.NotificationType, message, link string) {
	if !notifType.Valid() {
		logrus.WithField("type", notifType).Warn("Dropping notification with unknown type")
		return
	}

	notification := models.Notification{
		ID:      uuid.NewString(),
		Type:    notifType,
		Message: message,
		Link:    link,
		Read:    false,
		Date:    time.Now(),
	}

	err := s.users.PushNotification(ctx, targetUserID, notification)

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": targetUserID,
			"type":    notifType,
		}).WithError(err).Warn("Failed to deliver notification")
	}
}

// MarkRead flips the read flag on the matching notification and returns its
// link so the caller can redirect. An unknown notification ID is a no-op
// with an empty link.
func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	link := ""
	found := false

	for i := range user.Notifications {
		if user.Notifications[i].ID == notificationID {
			user.Notifications[i].Read = true
			link = user.Notifications[i].Link
			found = true
			break
		}
	}

	if !found {
		return "", nil
	}

	if err := s.users.SaveNotifications(ctx, userID, user.Notifications); err != nil {
		return "", fmt.Errorf("save notifications: %w", err)
	}

	return link, nil
}
