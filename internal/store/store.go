package store

import (
	"context"
	"errors"

	"github.com/noteblog-dev/noteblog/internal/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserStore persists User documents. Targeted update methods issue
// single-document, set-semantic writes; cross-document consistency is the
// caller's responsibility.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Search(ctx context.Context, query string) ([]models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error

	AddFollower(ctx context.Context, userID, followerID string) error
	RemoveFollower(ctx context.Context, userID, followerID string) error
	AddFollowing(ctx context.Context, userID, followingID string) error
	RemoveFollowing(ctx context.Context, userID, followingID string) error

	AddSavedPost(ctx context.Context, userID, postID string) error
	RemoveSavedPost(ctx context.Context, userID, postID string) error

	// PushNotification front-inserts and trims the feed to
	// models.MaxNotifications in a single write.
	PushNotification(ctx context.Context, userID string, n models.Notification) error
	SaveNotifications(ctx context.Context, userID string, notifications []models.Notification) error
}

type PostStore interface {
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Post, error)
	FindByAuthor(ctx context.Context, username string) ([]models.Post, error)
	All(ctx context.Context, category models.Category) ([]models.Post, error)
	TopLiked(ctx context.Context, limit int) ([]models.Post, error)
	Related(ctx context.Context, category models.Category, excludeID string, limit int) ([]models.Post, error)
	Search(ctx context.Context, query string) ([]models.Post, error)
	Insert(ctx context.Context, post *models.Post) error
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error

	IncrementViews(ctx context.Context, id string) error
	AddLike(ctx context.Context, id, userID string) error
	RemoveLike(ctx context.Context, id, userID string) error
	AppendComment(ctx context.Context, id string, comment models.Comment) error
}

type MessageStore interface {
	Insert(ctx context.Context, message *models.Message) error
	All(ctx context.Context) ([]models.Message, error)
}
