package models

import (
	"time"
)

// MaxNotifications is the per-user feed cap. Inserting beyond it evicts the
// oldest entries from the back of the feed.
const MaxNotifications = 20

type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationFollow, NotificationLike, NotificationComment:
		return true
	}
	return false
}

type Notification struct {
	ID      string           `bson:"id" json:"id"`
	Type    NotificationType `bson:"type" json:"type"`
	Message string           `bson:"message" json:"message"`
	Link    string           `bson:"link" json:"link"`
	Read    bool             `bson:"read" json:"read"`
	Date    time.Time        `bson:"date" json:"date"`
}
