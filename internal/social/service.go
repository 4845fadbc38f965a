package social

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/noteblog-dev/noteblog/internal/models"
	"github.com/noteblog-dev/noteblog/internal/notify"
	"github.com/noteblog-dev/noteblog/internal/store"
)

// Service implements the social-graph operations: follow/unfollow, the like
// toggle, comment append, and the view counter. Each one is a read then a
// set-semantic single-document write; the two documents touched by
// follow/unfollow are updated independently, and a failure between the two
// writes is surfaced without rollback.
type Service struct {
	users         store.UserStore
	posts         store.PostStore
	notifications *notify.Service
}

func NewService(users store.UserStore, posts store.PostStore, notifications *notify.Service) *Service {
	return &Service{
		users:         users,
		posts:         posts,
		notifications: notifications,
	}
}

// Follow adds actor to target's followers and target to actor's following.
// Following yourself or someone you already follow is a no-op. Returns the
// updated actor for session refresh.
func (s *Service) Follow(ctx context.Context, actorID, targetID string) (*models.User, error) {
	actor, err := s.users.FindByID(ctx, actorID)

	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}

	if actorID == targetID {
		return actor, nil
	}

	target, err := s.users.FindByID(ctx, targetID)

	if err != nil {
		return nil, fmt.Errorf("load target: %w", err)
	}

	if target.IsFollowedBy(actorID) {
		return actor, nil
	}

	// Target first, then actor. No rollback if the second write fails.
	if err := s.users.AddFollower(ctx, targetID, actorID); err != nil {
		return nil, fmt.Errorf("update target: %w", err)
	}

	if err := s.users.AddFollowing(ctx, actorID, targetID); err != nil {
		return nil, fmt.Errorf("update actor: %w", err)
	}

	s.notifications.Notify(ctx, targetID, models.NotificationFollow,
		fmt.Sprintf("%s started following you.", actor.FullName),
		"/profile/"+actor.Username)

	actor.Following = append(actor.Following, targetID)
	return actor, nil
}

// Unfollow removes the relationship from both sides. Unfollowing someone you
// don't follow is a no-op. Returns the updated actor.
func (s *Service) Unfollow(ctx context.Context, actorID, targetID string) (*models.User, error) {
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, fmt.Errorf("load target: %w", err)
	}

	if err := s.users.RemoveFollower(ctx, targetID, actorID); err != nil {
		return nil, fmt.Errorf("update target: %w", err)
	}

	if err := s.users.RemoveFollowing(ctx, actorID, targetID); err != nil {
		return nil, fmt.Errorf("update actor: %w", err)
	}

	actor, err := s.users.FindByID(ctx, actorID)

	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}

	return actor, nil
}

// ToggleLike adds the actor to the post's likes if absent, removes them if
// present. The post author is notified on like only, and never about their
// own likes. Returns the updated post.
func (s *Service) ToggleLike(ctx context.Context, actorID, postID string) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)

	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}

	if post.IsLikedBy(actorID) {
		if err := s.posts.RemoveLike(ctx, postID, actorID); err != nil {
			return nil, fmt.Errorf("remove like: %w", err)
		}

		post.Likes = removeID(post.Likes, actorID)
		return post, nil
	}

	if err := s.posts.AddLike(ctx, postID, actorID); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}

	post.Likes = append(post.Likes, actorID)

	s.notifyAuthor(ctx, post, actorID, models.NotificationLike, "%s liked your post.")

	return post, nil
}

// AddComment appends a comment carrying a snapshot of the actor's identity.
// The post author is notified unless they are the commenter. Text validation
// is the caller's job.
func (s *Service) AddComment(ctx context.Context, actorID, postID, text string) (*models.Post, error) {
	actor, err := s.users.FindByID(ctx, actorID)

	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}

	post, err := s.posts.FindByID(ctx, postID)

	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}

	comment := models.Comment{
		ID:       uuid.NewString(),
		UserID:   actor.ID,
		Username: actor.Username,
		FullName: actor.FullName,
		Text:     text,
		Date:     time.Now(),
	}

	if err := s.posts.AppendComment(ctx, postID, comment); err != nil {
		return nil, fmt.Errorf("append comment: %w", err)
	}

	post.Comments = append(post.Comments, comment)

	s.notifyAuthor(ctx, post, actorID, models.NotificationComment, "%s commented on your post.")

	return post, nil
}

// IncrementView bumps the raw view counter. Every call counts, including
// repeat visits and the author's own.
func (s *Service) IncrementView(ctx context.Context, postID string) error {
	return s.posts.IncrementViews(ctx, postID)
}

// notifyAuthor resolves the post author and notifies them about the actor's
// action, suppressing self-notifications.
func (s *Service) notifyAuthor(ctx context.Context, post *models.Post, actorID string, notifType models.NotificationType, format string) {
	author, err := s.users.FindByUsername(ctx, post.AuthorUsername)

	if err != nil || author.ID == actorID {
		return
	}

	actor, err := s.users.FindByID(ctx, actorID)

	if err != nil {
		return
	}

	s.notifications.Notify(ctx, author.ID, notifType,
		fmt.Sprintf(format, actor.FullName), "/post/"+post.ID)
}

func removeID(ids []string, id string) []string {
	result := ids[:0]

	for _, v := range ids {
		if v != id {
			result = append(result, v)
		}
	}

	return result
}
