// models/forum.go
package models

import "time"

// Forum is a discussion post.
type Forum struct {
	ID        int64     `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Subtitle  string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Topic     string    `bson:"topic" json:"topic"`
	Body      string    `bson:"body" json:"body"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	UserID    int64     `bson:"user_id" json:"user_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ForumComment is a comment on a forum post.
type ForumComment struct {
	ID        int64     `bson:"id" json:"id"`
	Content   string    `bson:"content" json:"content"`
	UserID    int64     `bson:"user_id" json:"user_id"`
	ForumID   int64     `bson:"forum_id" json:"forum_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ForumLike marks a user's like on a forum post. At most one per
// (user, forum) pair, enforced by a unique index.
type ForumLike struct {
	UserID    int64     `bson:"user_id" json:"user_id"`
	ForumID   int64     `bson:"forum_id" json:"forum_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ForumFilter narrows forum listings.
type ForumFilter struct {
	Topic  string `form:"topic"`
	Search string `form:"search"`
}

// CommentView is a comment enriched with its author's display name.
type CommentView struct {
	ForumComment `bson:",inline"`
	UserName     string `json:"user_name"`
}

// ForumView is a forum post enriched with author name, social counters and
// the caller's own like state.
type ForumView struct {
	Forum
	UserName     string        `json:"user_name"`
	LikeCount    int64         `json:"like_count"`
	CommentCount int64         `json:"comment_count"`
	HasLiked     bool          `json:"has_liked"`
	Comments     []CommentView `json:"comments"`
}

// ForumInput is the create/update payload for a forum post.
type ForumInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Topic    string `json:"topic"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url,omitempty"`
}
