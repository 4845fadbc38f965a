package store

import (
	"context"
	"testing"
	"time"

	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreSetSemantics(t *testing.T) {
	users := NewMemoryUserStore()

	require.NoError(t, users.Insert(context.Background(), &models.User{
		ID:       "a",
		Username: "alice",
		Email:    "alice@example.com",
	}))

	require.NoError(t, users.AddFollower(context.Background(), "a", "b"))
	require.NoError(t, users.AddFollower(context.Background(), "a", "b"))

	user, err := users.FindByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, user.Followers)

	require.NoError(t, users.RemoveFollower(context.Background(), "a", "b"))
	require.NoError(t, users.RemoveFollower(context.Background(), "a", "b"))

	user, err = users.FindByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Empty(t, user.Followers)
}

func TestUserStoreDuplicateKey(t *testing.T) {
	users := NewMemoryUserStore()

	require.NoError(t, users.Insert(context.Background(), &models.User{
		ID:       "a",
		Username: "alice",
		Email:    "alice@example.com",
	}))

	err := users.Insert(context.Background(), &models.User{
		ID:       "b",
		Username: "alice",
		Email:    "other@example.com",
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUserStoreUpdateMissingUser(t *testing.T) {
	users := NewMemoryUserStore()

	assert.ErrorIs(t, users.AddFollower(context.Background(), "ghost", "a"), ErrNotFound)
	assert.ErrorIs(t, users.PushNotification(context.Background(), "ghost", models.Notification{}), ErrNotFound)
}

func TestPostStoreTopLiked(t *testing.T) {
	posts := NewMemoryPostStore()
	now := time.Now()

	seed := []struct {
		id    string
		likes []string
	}{
		{"p1", []string{"a"}},
		{"p2", []string{"a", "b", "c"}},
		{"p3", nil},
		{"p4", []string{"a", "b"}},
	}

	for i, p := range seed {
		require.NoError(t, posts.Insert(context.Background(), &models.Post{
			ID:        p.id,
			Title:     p.id,
			Category:  models.CategoryTechnology,
			Likes:     p.likes,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	top, err := posts.TopLiked(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, top, 3)
	assert.Equal(t, "p2", top[0].ID)
	assert.Equal(t, "p4", top[1].ID)
	assert.Equal(t, "p1", top[2].ID)
}

func TestPostStoreSearch(t *testing.T) {
	posts := NewMemoryPostStore()

	require.NoError(t, posts.Insert(context.Background(), &models.Post{
		ID:      "p1",
		Title:   "Intro to Go generics",
		Content: "type parameters",
	}))
	require.NoError(t, posts.Insert(context.Background(), &models.Post{
		ID:      "p2",
		Title:   "Cooking pasta",
		Content: "boil water, add GENERICS of salt",
	}))
	require.NoError(t, posts.Insert(context.Background(), &models.Post{
		ID:      "p3",
		Title:   "Unrelated",
		Content: "nothing here",
	}))

	results, err := posts.Search(context.Background(), "generics")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestPostStoreAllFiltersByCategory(t *testing.T) {
	posts := NewMemoryPostStore()
	now := time.Now()

	require.NoError(t, posts.Insert(context.Background(), &models.Post{
		ID: "p1", Category: models.CategoryTechnology, CreatedAt: now,
	}))
	require.NoError(t, posts.Insert(context.Background(), &models.Post{
		ID: "p2", Category: models.CategoryLife, CreatedAt: now.Add(time.Minute),
	}))
	require.NoError(t, posts.Insert(context.Background(), &models.Post{
		ID: "p3", Category: models.CategoryTechnology, CreatedAt: now.Add(2 * time.Minute),
	}))

	all, err := posts.All(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p3", all[0].ID) // newest first

	tech, err := posts.All(context.Background(), models.CategoryTechnology)
	require.NoError(t, err)
	assert.Len(t, tech, 2)
}

func TestMessageStoreNewestFirst(t *testing.T) {
	messages := NewMemoryMessageStore()

	require.NoError(t, messages.Insert(context.Background(), &models.Message{ID: "m1", Subject: "first"}))
	require.NoError(t, messages.Insert(context.Background(), &models.Message{ID: "m2", Subject: "second"}))

	all, err := messages.All(context.Background())
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, "m2", all[0].ID)
}
