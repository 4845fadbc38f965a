package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/noteblog-dev/noteblog/internal/models"
)

// MemoryUserStore is an in-memory UserStore with the same write-time set
// semantics as the mongo implementation. Used in tests.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func copyUser(u *models.User) *models.User {
	clone := *u
	clone.Skills = append([]string(nil), u.Skills...)
	clone.Followers = append([]string(nil), u.Followers...)
	clone.Following = append([]string(nil), u.Following...)
	clone.SavedPosts = append([]string(nil), u.SavedPosts...)
	clone.Notifications = append([]models.Notification(nil), u.Notifications...)
	return &clone
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]

	if !ok {
		return nil, ErrNotFound
	}

	return copyUser(user), nil
}

func (s *MemoryUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}

	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}

	return nil, ErrNotFound
}

func (s *MemoryUserStore) Search(ctx context.Context, query string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(query)

	var result []models.User

	for _, user := range s.users {
		if strings.Contains(strings.ToLower(user.FullName), query) {
			result = append(result, *copyUser(user))
			continue
		}
		for _, skill := range user.Skills {
			if strings.Contains(strings.ToLower(skill), query) {
				result = append(result, *copyUser(user))
				break
			}
		}
	}

	return result, nil
}

func (s *MemoryUserStore) All(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.User

	for _, user := range s.users {
		result = append(result, *copyUser(user))
	}

	return result, nil
}

func (s *MemoryUserStore) Insert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.ID == user.ID || existing.Username == user.Username || existing.Email == user.Email {
			return ErrDuplicateKey
		}
	}

	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *MemoryUserStore) Save(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}

	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *MemoryUserStore) update(userID string, fn func(*models.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]

	if !ok {
		return ErrNotFound
	}

	fn(user)
	return nil
}

func addToSet(set []string, value string) []string {
	for _, v := range set {
		if v == value {
			return set
		}
	}
	return append(set, value)
}

func pull(set []string, value string) []string {
	result := set[:0]

	for _, v := range set {
		if v != value {
			result = append(result, v)
		}
	}

	return result
}

func (s *MemoryUserStore) AddFollower(ctx context.Context, userID, followerID string) error {
	return s.update(userID, func(u *models.User) {
		u.Followers = addToSet(u.Followers, followerID)
	})
}

func (s *MemoryUserStore) RemoveFollower(ctx context.Context, userID, followerID string) error {
	return s.update(userID, func(u *models.User) {
		u.Followers = pull(u.Followers, followerID)
	})
}

func (s *MemoryUserStore) AddFollowing(ctx context.Context, userID, followingID string) error {
	return s.update(userID, func(u *models.User) {
		u.Following = addToSet(u.Following, followingID)
	})
}

func (s *MemoryUserStore) RemoveFollowing(ctx context.Context, userID, followingID string) error {
	return s.update(userID, func(u *models.User) {
		u.Following = pull(u.Following, followingID)
	})
}

func (s *MemoryUserStore) AddSavedPost(ctx context.Context, userID, postID string) error {
	return s.update(userID, func(u *models.User) {
		u.SavedPosts = addToSet(u.SavedPosts, postID)
	})
}

func (s *MemoryUserStore) RemoveSavedPost(ctx context.Context, userID, postID string) error {
	return s.update(userID, func(u *models.User) {
		u.SavedPosts = pull(u.SavedPosts, postID)
	})
}

func (s *MemoryUserStore) PushNotification(ctx context.Context, userID string, n models.Notification) error {
	return s.update(userID, func(u *models.User) {
		u.Notifications = append([]models.Notification{n}, u.Notifications...)
		if len(u.Notifications) > models.MaxNotifications {
			u.Notifications = u.Notifications[:models.MaxNotifications]
		}
	})
}

func (s *MemoryUserStore) SaveNotifications(ctx context.Context, userID string, notifications []models.Notification) error {
	return s.update(userID, func(u *models.User) {
		u.Notifications = append([]models.Notification(nil), notifications...)
	})
}

// MemoryPostStore is an in-memory PostStore. Used in tests.
type MemoryPostStore struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: make(map[string]*models.Post)}
}

func copyPost(p *models.Post) *models.Post {
	clone := *p
	clone.Likes = append([]string(nil), p.Likes...)
	clone.Comments = append([]models.Comment(nil), p.Comments...)
	return &clone
}

func (s *MemoryPostStore) FindByID(ctx context.Context, id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]

	if !ok {
		return nil, ErrNotFound
	}

	return copyPost(post), nil
}

func (s *MemoryPostStore) FindByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Post

	for _, id := range ids {
		if post, ok := s.posts[id]; ok {
			result = append(result, *copyPost(post))
		}
	}

	return result, nil
}

func (s *MemoryPostStore) FindByAuthor(ctx context.Context, username string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Post

	for _, post := range s.posts {
		if post.AuthorUsername == username {
			result = append(result, *copyPost(post))
		}
	}

	sortNewestFirst(result)
	return result, nil
}

func sortNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func (s *MemoryPostStore) All(ctx context.Context, category models.Category) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Post

	for _, post := range s.posts {
		if category != "" && post.Category != category {
			continue
		}
		result = append(result, *copyPost(post))
	}

	sortNewestFirst(result)
	return result, nil
}

func (s *MemoryPostStore) TopLiked(ctx context.Context, limit int) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Post

	for _, post := range s.posts {
		result = append(result, *copyPost(post))
	}

	sort.Slice(result, func(i, j int) bool {
		if len(result[i].Likes) != len(result[j].Likes) {
			return len(result[i].Likes) > len(result[j].Likes)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (s *MemoryPostStore) Related(ctx context.Context, category models.Category, excludeID string, limit int) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Post

	for _, post := range s.posts {
		if post.Category != category || post.ID == excludeID {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *copyPost(post))
	}

	return result, nil
}

func (s *MemoryPostStore) Search(ctx context.Context, query string) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(query)

	var result []models.Post

	for _, post := range s.posts {
		if strings.Contains(strings.ToLower(post.Title), query) ||
			strings.Contains(strings.ToLower(post.Content), query) {
			result = append(result, *copyPost(post))
		}
	}

	return result, nil
}

func (s *MemoryPostStore) Insert(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; ok {
		return ErrDuplicateKey
	}

	s.posts[post.ID] = copyPost(post)
	return nil
}

func (s *MemoryPostStore) Save(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; !ok {
		return ErrNotFound
	}

	s.posts[post.ID] = copyPost(post)
	return nil
}

func (s *MemoryPostStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}

	delete(s.posts, id)
	return nil
}

func (s *MemoryPostStore) update(id string, fn func(*models.Post)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]

	if !ok {
		return ErrNotFound
	}

	fn(post)
	return nil
}

func (s *MemoryPostStore) IncrementViews(ctx context.Context, id string) error {
	return s.update(id, func(p *models.Post) {
		p.Views++
	})
}

func (s *MemoryPostStore) AddLike(ctx context.Context, id, userID string) error {
	return s.update(id, func(p *models.Post) {
		p.Likes = addToSet(p.Likes, userID)
	})
}

func (s *MemoryPostStore) RemoveLike(ctx context.Context, id, userID string) error {
	return s.update(id, func(p *models.Post) {
		p.Likes = pull(p.Likes, userID)
	})
}

func (s *MemoryPostStore) AppendComment(ctx context.Context, id string, comment models.Comment) error {
	return s.update(id, func(p *models.Post) {
		p.Comments = append(p.Comments, comment)
	})
}

// MemoryMessageStore is an in-memory MessageStore. Used in tests.
type MemoryMessageStore struct {
	mu       sync.Mutex
	messages []models.Message
}

func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{}
}

func (s *MemoryMessageStore) Insert(ctx context.Context, message *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, *message)
	return nil
}

func (s *MemoryMessageStore) All(ctx context.Context) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Message, 0, len(s.messages))

	for i := len(s.messages) - 1; i >= 0; i-- {
		result = append(result, s.messages[i])
	}

	return result, nil
}
