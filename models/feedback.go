// models/feedback.go
package models

import "time"

// Feedback is a 1-5 rating of either the platform itself or a lecturer,
// depending on which ledger it lives in. Each user may submit at most one
// entry per ledger.
type Feedback struct {
	ID          int64     `bson:"id" json:"id"`
	UserID      int64     `bson:"user_id" json:"user_id"`
	Rating      int       `bson:"rating" json:"rating"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// FeedbackInput is the create/update payload for a feedback entry.
type FeedbackInput struct {
	Rating      int    `json:"rating"`
	Description string `json:"description,omitempty"`
}
