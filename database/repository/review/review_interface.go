package reviewRepo

import "studeaf/models"

// ReviewRepository defines methods for translation review data access.
type ReviewRepository interface {
	// Create inserts a new review record, assigning its id. Returns
	// ErrDuplicate when a review already exists for the same order.
	Create(review *models.Review) error
	// GetByID retrieves a review by its unique ID.
	GetByID(id int64) (*models.Review, error)
	// GetByOrderID retrieves the review attached to an order.
	GetByOrderID(orderID int64) (*models.Review, error)
	// ListByTranslator returns a page of a translator's reviews, newest
	// first, plus the total count.
	ListByTranslator(translatorID, offset, limit int64) ([]models.Review, int64, error)
	// Update fully replaces a review's rating and description.
	Update(review *models.Review) error
	// Delete removes a review record by its ID.
	Delete(id int64) error
	// DeleteByTranslator removes all reviews tied to a translator's orders.
	DeleteByTranslator(translatorID int64) error
	// DeleteByOrders removes the reviews attached to the given orders.
	DeleteByOrders(orderIDs []int64) error
}
