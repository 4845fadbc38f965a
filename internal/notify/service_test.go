package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, users *store.MemoryUserStore, id string) {
	t.Helper()

	err := users.Insert(context.Background(), &models.User{
		ID:        id,
		Username:  id,
		Email:     id + "@example.com",
		FullName:  "User " + id,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func feed(t *testing.T, users *store.MemoryUserStore, id string) []models.Notification {
	t.Helper()

	user, err := users.FindByID(context.Background(), id)
	require.NoError(t, err)
	return user.Notifications
}

func TestNotifyFrontInserts(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)
	seedUser(t, users, "alice")

	service.Notify(context.Background(), "alice", models.NotificationLike, "first", "/post/1")
	service.Notify(context.Background(), "alice", models.NotificationComment, "second", "/post/2")

	notifications := feed(t, users, "alice")
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Message)
	assert.Equal(t, "first", notifications[1].Message)
	assert.False(t, notifications[0].Read)
	assert.NotEmpty(t, notifications[0].ID)
}

func TestNotifyCapsFeedAtTwenty(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)
	seedUser(t, users, "alice")

	for i := 1; i <= 21; i++ {
		service.Notify(context.Background(), "alice", models.NotificationLike,
			fmt.Sprintf("m%d", i), "/post/1")
	}

	notifications := feed(t, users, "alice")
	require.Len(t, notifications, models.MaxNotifications)

	// Newest first: m21 down to m2; m1 was evicted from the back.
	assert.Equal(t, "m21", notifications[0].Message)
	assert.Equal(t, "m2", notifications[len(notifications)-1].Message)

	for _, n := range notifications {
		assert.NotEqual(t, "m1", n.Message)
	}
}

func TestNotifyMissingUserIsSilent(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)

	assert.NotPanics(t, func() {
		service.Notify(context.Background(), "ghost", models.NotificationFollow, "hello", "/profile/x")
	})
}

func TestNotifyRejectsUnknownType(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)
	seedUser(t, users, "alice")

	service.Notify(context.Background(), "alice", models.NotificationType("mention"), "hello", "/post/1")

	assert.Empty(t, feed(t, users, "alice"))
}

func TestMarkReadReturnsLink(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)
	seedUser(t, users, "alice")

	service.Notify(context.Background(), "alice", models.NotificationComment, "ping", "/post/42")

	notifications := feed(t, users, "alice")
	require.Len(t, notifications, 1)

	link, err := service.MarkRead(context.Background(), "alice", notifications[0].ID)
	require.NoError(t, err)

	assert.Equal(t, "/post/42", link)
	assert.True(t, feed(t, users, "alice")[0].Read)
}

func TestMarkReadUnknownIDIsNoOp(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)
	seedUser(t, users, "alice")

	service.Notify(context.Background(), "alice", models.NotificationComment, "ping", "/post/42")

	link, err := service.MarkRead(context.Background(), "alice", "nope")
	require.NoError(t, err)

	assert.Empty(t, link)
	assert.False(t, feed(t, users, "alice")[0].Read)
}

func TestMarkReadMissingUser(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)

	_, err := service.MarkRead(context.Background(), "ghost", "n1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMarkReadLeavesOthersUnread(t *testing.T) {
	users := store.NewMemoryUserStore()
	service := NewService(users)
	seedUser(t, users, "alice")

	service.Notify(context.Background(), "alice", models.NotificationLike, "one", "/post/1")
	service.Notify(context.Background(), "alice", models.NotificationLike, "two", "/post/2")

	notifications := feed(t, users, "alice")

	_, err := service.MarkRead(context.Background(), "alice", notifications[1].ID)
	require.NoError(t, err)

	updated := feed(t, users, "alice")
	assert.False(t, updated[0].Read)
	assert.True(t, updated[1].Read)
}
