package entities

import "time"

// Post carries a denormalized snapshot of the author's name and avatar,
// taken at creation time. The owning user ID is immutable.
type Post struct {
	ID        string    `json:"id"` // UUID
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// Like records that a user liked a post. One like per user per post.
type Like struct {
	UserID string `json:"user"`
}

// Comment is a reply on a post, with the same author snapshot as posts.
type Comment struct {
	ID        string    `json:"id"` // UUID
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
