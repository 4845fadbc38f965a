package social

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/notify"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users   *store.MemoryUserStore
	posts   *store.MemoryPostStore
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := store.NewMemoryUserStore()
	posts := store.NewMemoryPostStore()

	return &fixture{
		users:   users,
		posts:   posts,
		service: NewService(users, posts, notify.NewService(users)),
	}
}

func (f *fixture) seedUser(t *testing.T, id, username string) {
	t.Helper()

	err := f.users.Insert(context.Background(), &models.User{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		FullName:  "User " + username,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func (f *fixture) seedPost(t *testing.T, id, authorUsername string) {
	t.Helper()

	err := f.posts.Insert(context.Background(), &models.Post{
		ID:             id,
		Title:          "Post " + id,
		Content:        "content",
		Category:       models.CategoryTechnology,
		AuthorUsername: authorUsername,
		AuthorName:     "User " + authorUsername,
		CreatedAt:      time.Now(),
	})
	require.NoError(t, err)
}

func (f *fixture) user(t *testing.T, id string) *models.User {
	t.Helper()

	user, err := f.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	return user
}

func (f *fixture) post(t *testing.T, id string) *models.Post {
	t.Helper()

	post, err := f.posts.FindByID(context.Background(), id)
	require.NoError(t, err)
	return post
}

func TestFollowIsSymmetric(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a", "alice")
	f.seedUser(t, "b", "bob")

	actor, err := f.service.Follow(context.Background(), "a", "b")
	require.NoError(t, err)

	assert.Contains(t, actor.Following, "b")
	assert.Contains(t, f.user(t, "a").Following, "b")
	assert.Contains(t, f.user(t, "b").Followers, "a")
}

func TestFollowIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a", "alice")
	f.seedUser(t, "b", "bob")

	_, err := f.service.Follow(context.Background(), "a", "b")
	require.NoError(t, err)

	_, err = f.service.Follow(context.Background(), "a", "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, f.user(t, "a").Following)
	assert.Equal(t, []string{"a"}, f.user(t, "b").Followers)

	// One follow, one notification.
	assert.Len(t, f.user(t, "b").Notifications, 1)
}

func TestFollowSelfIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a", "alice")

	actor, err := f.service.Follow(context.Background(), "a", "a")
	require.NoError(t, err)

	assert.Empty(t, actor.Following)
	assert.Empty(t, f.user(t, "a").Followers)
	assert.Empty(t, f.user(t, "a").Notifications)
}

func TestFollowMissingTarget(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a", "alice")

	_, err := f.service.Follow(context.Background(), "a", "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFollowNotifiesTarget(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a", "alice")
	f.seedUser(t, "b", "bob")

	_, err := f.service.Follow(context.Background(), "a", "b")
	require.NoError(t, err)

	notifications := f.user(t, "b").Notifications
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationFollow, notifications[0].Type)
	assert.Equal(t, "/profile/alice", notifications[0].Link)
	assert.False(t, notifications[0].Read)

	// The actor gets nothing.
	assert.Empty(t, f.user(t, "a").Notifications)
}

func TestUnfollowRemovesBothSides(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a", "alice")
	f.seedUser(t, "b", "bob")

	_, err := f.service.Follow(context.Background(), "a", "b")
	require.NoError(t, err)

	actor, err := f.service.Unfollow(context.Background(), "a", "b")
	require.NoError(t, err)

	assert.Empty(t, actor.Following)
	assert.Empty(t, f.user(t, "b").Followers)
}

func TestUnfollowWhenNotFollowingIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "a", "alice")
	f.seedUser(t, "b", "bob")

	_, err := f.service.Unfollow(context.Background(), "a", "b")
	require.NoError(t, err)

	assert.Empty(t, f.user(t, "a").Following)
	assert.Empty(t, f.user(t, "b").Followers)

	// No unfollow notification either.
	assert.Empty(t, f.user(t, "b").Notifications)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "uma")
	f.seedUser(t, "author", "arthur")
	f.seedPost(t, "p1", "arthur")

	post, err := f.service.ToggleLike(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, post.Likes)

	post, err = f.service.ToggleLike(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Empty(t, post.Likes)
	assert.Empty(t, f.post(t, "p1").Likes)
}

func TestToggleLikeNeverDuplicates(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "uma")
	f.seedUser(t, "author", "arthur")
	f.seedPost(t, "p1", "arthur")

	for i := 0; i < 5; i++ {
		_, err := f.service.ToggleLike(context.Background(), "u1", "p1")
		require.NoError(t, err)
	}

	likes := f.post(t, "p1").Likes
	assert.LessOrEqual(t, len(likes), 1)
}

func TestLikeNotifiesAuthorOnce(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "uma")
	f.seedUser(t, "author", "arthur")
	f.seedPost(t, "p1", "arthur")

	_, err := f.service.ToggleLike(context.Background(), "u1", "p1")
	require.NoError(t, err)

	notifications := f.user(t, "author").Notifications
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationLike, notifications[0].Type)
	assert.Equal(t, "/post/p1", notifications[0].Link)

	// Unlike does not notify.
	_, err = f.service.ToggleLike(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Len(t, f.user(t, "author").Notifications, 1)
}

func TestLikeOwnPostDoesNotNotify(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "author", "arthur")
	f.seedPost(t, "p1", "arthur")

	post, err := f.service.ToggleLike(context.Background(), "author", "p1")
	require.NoError(t, err)

	assert.Equal(t, []string{"author"}, post.Likes)
	assert.Empty(t, f.user(t, "author").Notifications)
}

func TestToggleLikeMissingPost(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "uma")

	_, err := f.service.ToggleLike(context.Background(), "u1", "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddCommentAppendsAndNotifies(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u2", "ursula")
	f.seedUser(t, "u3", "ulrich")
	f.seedPost(t, "p1", "ulrich")

	post, err := f.service.AddComment(context.Background(), "u2", "p1", "nice post")
	require.NoError(t, err)

	require.Len(t, post.Comments, 1)
	assert.Equal(t, "u2", post.Comments[0].UserID)
	assert.Equal(t, "ursula", post.Comments[0].Username)
	assert.Equal(t, "nice post", post.Comments[0].Text)
	assert.NotEmpty(t, post.Comments[0].ID)

	notifications := f.user(t, "u3").Notifications
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationComment, notifications[0].Type)
	assert.Equal(t, "/post/p1", notifications[0].Link)
}

func TestCommentsPreserveInsertionOrder(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u2", "ursula")
	f.seedUser(t, "u3", "ulrich")
	f.seedPost(t, "p1", "ulrich")

	for i := 0; i < 3; i++ {
		_, err := f.service.AddComment(context.Background(), "u2", "p1", fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}

	comments := f.post(t, "p1").Comments
	require.Len(t, comments, 3)

	for i, comment := range comments {
		assert.Equal(t, fmt.Sprintf("comment %d", i), comment.Text)
	}
}

func TestCommentOwnPostDoesNotNotify(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "author", "arthur")
	f.seedPost(t, "p1", "arthur")

	_, err := f.service.AddComment(context.Background(), "author", "p1", "first!")
	require.NoError(t, err)

	assert.Empty(t, f.user(t, "author").Notifications)
}

func TestIncrementViewCountsEveryCall(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "author", "arthur")
	f.seedPost(t, "p1", "arthur")

	for i := 0; i < 4; i++ {
		require.NoError(t, f.service.IncrementView(context.Background(), "p1"))
	}

	assert.Equal(t, int64(4), f.post(t, "p1").Views)
}

func TestIncrementViewMissingPost(t *testing.T) {
	f := newFixture(t)

	err := f.service.IncrementView(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
