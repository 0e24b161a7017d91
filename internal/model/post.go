package model

import "time"

type PostStatus string

const (
	PostStatusActive   PostStatus = "active"
	PostStatusInactive PostStatus = "inactive"
)

// Post is a post document stored in the hosted backend. UserID is immutable
// once set and is the sole ownership key.
type Post struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        PostStatus `json:"status"`
	FeaturedImage string     `json:"featured_image"`
	CreatedAt     time.Time  `json:"created_at"`
}

// FeedPost is a post annotated for display: the resolved author name and an
// advisory ownership flag. The flag only toggles UI affordances; the backend
// still rejects writes from non-authors.
type FeedPost struct {
	Post       Post   `json:"post"`
	AuthorName string `json:"author_name"`
	IsOwner    bool   `json:"is_owner"`
}
