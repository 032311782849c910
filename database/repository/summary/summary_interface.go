package summaryRepo

import "studeaf/models"

// SummaryRepository defines methods for summary data access.
type SummaryRepository interface {
	// Create inserts a new summary draft, assigning its id.
	Create(summary *models.Summary) error
	// GetByID retrieves a summary by its unique ID.
	GetByID(id int64) (*models.Summary, error)
	// ListVisible returns the user's own summaries and, when
	// includePublished is set, everyone else's published ones, newest first.
	ListVisible(userID int64, includePublished bool) ([]models.Summary, error)
	// UpdateContent replaces a draft's content.
	UpdateContent(id int64, content string) error
	// Publish marks a summary published and attaches its metadata.
	Publish(id int64, meta models.SummaryPublish) error
	// Delete removes a summary together with its comments and reactions.
	Delete(id int64) error
	// DeleteByUser removes all of a user's summaries with their comments and reactions.
	DeleteByUser(userID int64) error

	// CreateComment inserts a comment on a summary, assigning its id.
	CreateComment(comment *models.SummaryComment) error
	// ListComments returns a summary's comments in insertion order.
	ListComments(summaryID int64) ([]models.SummaryComment, error)
	// CountComments counts a summary's comments.
	CountComments(summaryID int64) (int64, error)

	// ToggleReaction flips a user's like or bookmark; reports the resulting state.
	ToggleReaction(summaryID, userID int64, kind string) (bool, error)
	// CountReactions counts a summary's reactions of the given kind.
	CountReactions(summaryID int64, kind string) (int64, error)
	// HasReacted reports whether a user holds a reaction of the given kind.
	HasReacted(summaryID, userID int64, kind string) (bool, error)
}
