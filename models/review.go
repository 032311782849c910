// models/review.go
package models

import "time"

// Review is a 1-5 rating attached to exactly one completed order. The
// translator id is denormalized from the order so translator-side listings
// and cascades need no join.
type Review struct {
	ID           int64     `bson:"id" json:"id"`
	OrderID      int64     `bson:"order_id" json:"order_id"`
	UserID       int64     `bson:"user_id" json:"user_id"`
	TranslatorID int64     `bson:"translator_id" json:"translator_id"`
	Rating       int       `bson:"rating" json:"rating"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ReviewView is a review enriched with the reviewer's display name.
type ReviewView struct {
	Review
	UserName string `json:"user_name"`
}

// ReviewInput is the create/update payload for a review. Updates are full
// replaces of rating and description.
type ReviewInput struct {
	Rating      int    `json:"rating"`
	Description string `json:"description,omitempty"`
}
