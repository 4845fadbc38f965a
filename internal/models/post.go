package models

import (
	"time"
)

type Comment struct {
	ID       string    `bson:"id" json:"id"`
	UserID   string    `bson:"userId" json:"userId"`
	Username string    `bson:"username" json:"username"`
	FullName string    `bson:"fullName" json:"fullName"`
	Text     string    `bson:"text" json:"text"`
	Date     time.Time `bson:"date" json:"date"`
}

type Post struct {
	ID      string `bson:"id" json:"id"`
	Title   string `bson:"title" json:"title"`
	Summary string `bson:"summary" json:"summary"`
	Content string `bson:"content" json:"content"`
	Image   string `bson:"image" json:"image"`

	Category Category `bson:"category" json:"category"`

	// Author snapshot taken at creation time.
	AuthorUsername string `bson:"authorUsername" json:"authorUsername"`
	AuthorName     string `bson:"authorName" json:"authorName"`

	Views int64    `bson:"views" json:"views"`
	Likes []string `bson:"likes" json:"likes"` // user IDs, at most one entry per user

	// Append-only, oldest first.
	Comments []Comment `bson:"comments" json:"comments"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (p *Post) IsLikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
