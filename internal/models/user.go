package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type SocialLinks struct {
	Github   string `bson:"github" json:"github"`
	Linkedin string `bson:"linkedin" json:"linkedin"`
	Website  string `bson:"website" json:"website"`
}

type User struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password" json:"-"`
	Email        string `bson:"email" json:"email"`
	FullName     string `bson:"fullName" json:"fullName"`
	Role         string `bson:"role" json:"role"`

	Bio          string      `bson:"bio" json:"bio"`
	Skills       []string    `bson:"skills" json:"skills"`
	ProfileImage string      `bson:"profileImage" json:"profileImage"`
	Social       SocialLinks `bson:"social" json:"social"`

	Followers  []string `bson:"followers" json:"followers"`   // user IDs
	Following  []string `bson:"following" json:"following"`   // user IDs
	SavedPosts []string `bson:"savedPosts" json:"savedPosts"` // post IDs

	// Newest first, capped at MaxNotifications.
	Notifications []Notification `bson:"notifications" json:"notifications"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsFollowedBy(userID string) bool {
	for _, id := range u.Followers {
		if id == userID {
			return true
		}
	}
	return false
}

func (u *User) UnreadNotifications() int {
	count := 0

	for _, n := range u.Notifications {
		if !n.Read {
			count++
		}
	}

	return count
}
