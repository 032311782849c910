package orderRepo

import "studeaf/models"

// OrderRepository defines methods for translation order data access.
type OrderRepository interface {
	// Create inserts a new order record, assigning its id.
	Create(order *models.Order) error
	// GetByID retrieves an order by its unique ID.
	GetByID(id int64) (*models.Order, error)
	// ListByUser returns a page of a user's orders plus the total count.
	ListByUser(userID, offset, limit int64) ([]models.Order, int64, error)
	// ListByTranslator returns a page of orders placed on a translator plus the total count.
	ListByTranslator(translatorID, offset, limit int64) ([]models.Order, int64, error)
	// UpdateStatus persists a status change on an order.
	UpdateStatus(id int64, status models.OrderStatus) (*models.Order, error)
	// CountActiveByTranslator counts a translator's pending and confirmed orders.
	CountActiveByTranslator(translatorID int64) (int64, error)
	// DeleteByTranslator removes all orders referencing a translator and
	// returns their ids so dependent records can be cascaded.
	DeleteByTranslator(translatorID int64) ([]int64, error)
	// DeleteByUser removes all orders placed by a user and returns their ids
	// so dependent records can be cascaded.
	DeleteByUser(userID int64) ([]int64, error)
}
