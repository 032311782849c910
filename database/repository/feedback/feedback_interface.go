package feedbackRepo

import "studeaf/models"

// FeedbackRepository defines persistence for one feedback ledger. The system
// and lecturer ledgers are separate instances over separate collections.
type FeedbackRepository interface {
	// Create inserts a new feedback entry, assigning its id.
	// Returns ErrDuplicate if the user already has an entry in this ledger.
	Create(feedback *models.Feedback) error

	// GetByID retrieves an entry by its unique ID, or ErrNotFound.
	GetByID(id int64) (*models.Feedback, error)

	// GetByUser retrieves a user's entry, or ErrNotFound.
	GetByUser(userID int64) (*models.Feedback, error)

	// List returns a page of the ledger, newest first, plus the total count.
	List(offset, limit int64) ([]models.Feedback, int64, error)

	// Update replaces an entry's rating and description.
	Update(id int64, rating int, description string) error

	// Delete removes an entry by its ID.
	Delete(id int64) error

	// DeleteByUser removes a user's entry if present.
	DeleteByUser(userID int64) error
}
