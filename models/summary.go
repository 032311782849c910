// models/summary.go
package models

import "time"

// Summary is a lecture summary. It starts life as a private draft holding
// only content; publishing attaches title/subtitle/topic and is irreversible.
type Summary struct {
	ID          int64     `bson:"id" json:"id"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle    string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Topic       string    `bson:"topic,omitempty" json:"topic,omitempty"`
	Content     string    `bson:"content" json:"content"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	IsPublished bool      `bson:"is_published" json:"is_published"`
	UserID      int64     `bson:"user_id" json:"user_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// SummaryComment is a comment on a published summary.
type SummaryComment struct {
	ID        int64     `bson:"id" json:"id"`
	Content   string    `bson:"content" json:"content"`
	UserID    int64     `bson:"user_id" json:"user_id"`
	SummaryID int64     `bson:"summary_id" json:"summary_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SummaryReaction is a like or bookmark on a summary, one per
// (user, summary, kind), enforced by a unique index.
type SummaryReaction struct {
	UserID    int64     `bson:"user_id" json:"user_id"`
	SummaryID int64     `bson:"summary_id" json:"summary_id"`
	Kind      string    `bson:"kind" json:"kind"` // "like" or "bookmark"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

const (
	ReactionLike     = "like"
	ReactionBookmark = "bookmark"
)

// SummaryView is a summary enriched with author name, counters and the
// caller's like/bookmark state.
type SummaryView struct {
	Summary
	UserName      string               `json:"user_name"`
	LikeCount     int64                `json:"like_count"`
	CommentCount  int64                `json:"comment_count"`
	BookmarkCount int64                `json:"bookmark_count"`
	HasLiked      bool                 `json:"has_liked"`
	HasBookmarked bool                 `json:"has_bookmarked"`
	Comments      []SummaryCommentView `json:"comments"`
}

// SummaryCommentView is a summary comment enriched with its author's name.
type SummaryCommentView struct {
	SummaryComment `bson:",inline"`
	UserName       string `json:"user_name"`
}

// SummaryPublish carries the metadata attached when publishing.
type SummaryPublish struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Topic    string `json:"topic"`
	ImageURL string `json:"image_url,omitempty"`
}
