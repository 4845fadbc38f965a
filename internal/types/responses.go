package types

import (
	"github.com/noteblog-dev/noteblog/internal/models"
)

type UserResponse struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	FullName     string             `json:"fullName"`
	Email        string             `json:"email"`
	Role         string             `json:"role"`
	Bio          string             `json:"bio"`
	Skills       []string           `json:"skills"`
	ProfileImage string             `json:"profileImage"`
	Social       models.SocialLinks `json:"social"`
	Followers    []string           `json:"followers"`
	Following    []string           `json:"following"`
	SavedPosts   []string           `json:"savedPosts"`
	Unread       int                `json:"unreadNotifications"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		FullName:     user.FullName,
		Email:        user.Email,
		Role:         user.Role,
		Bio:          user.Bio,
		Skills:       user.Skills,
		ProfileImage: user.ProfileImage,
		Social:       user.Social,
		Followers:    user.Followers,
		Following:    user.Following,
		SavedPosts:   user.SavedPosts,
		Unread:       user.UnreadNotifications(),
	}
}

// ProfileResponse is the public view of a user, without email or feed state.
type ProfileResponse struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	FullName     string             `json:"fullName"`
	Bio          string             `json:"bio"`
	Skills       []string           `json:"skills"`
	ProfileImage string             `json:"profileImage"`
	Social       models.SocialLinks `json:"social"`
	Followers    []string           `json:"followers"`
	Following    []string           `json:"following"`
}

func NewProfileResponse(user *models.User) ProfileResponse {
	return ProfileResponse{
		ID:           user.ID,
		Username:     user.Username,
		FullName:     user.FullName,
		Bio:          user.Bio,
		Skills:       user.Skills,
		ProfileImage: user.ProfileImage,
		Social:       user.Social,
		Followers:    user.Followers,
		Following:    user.Following,
	}
}
