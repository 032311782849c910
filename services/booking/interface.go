package booking

import (
	orderRepo "studeaf/database/repository/order"
	reviewRepo "studeaf/database/repository/review"
	translatorRepo "studeaf/database/repository/translator"
	userRepo "studeaf/database/repository/user"
	"studeaf/models"
)

// BookingService is the single entry surface for the translator directory,
// the order lifecycle, and the review ledger. Every call is independently
// authorized by the caller's verified auth context.
type BookingService interface {
	// Translator directory
	CreateTranslator(auth models.AuthContext, profile models.TranslatorProfile, ownerID int64) (*models.Translator, error)
	GetTranslator(id int64) (*models.Translator, error)
	ListTranslators(offset, limit int64) ([]models.Translator, int64, error)
	UpdateTranslator(auth models.AuthContext, id int64, profile models.TranslatorProfile) (*models.Translator, error)
	DeleteTranslator(auth models.AuthContext, id int64) error

	// Order lifecycle
	CreateOrder(auth models.AuthContext, translatorID int64, details models.OrderDetails) (*models.Order, error)
	GetOrder(auth models.AuthContext, id int64) (*models.Order, error)
	UpdateOrderStatus(auth models.AuthContext, orderID int64, target models.OrderStatus) (*models.Order, error)
	CompleteOrder(auth models.AuthContext, orderID int64) (*models.Order, error)
	ListUserOrders(auth models.AuthContext, offset, limit int64) ([]models.Order, int64, error)
	ListTranslatorOrders(auth models.AuthContext, offset, limit int64) ([]models.Order, int64, error)

	// Review ledger
	CreateReview(auth models.AuthContext, orderID int64, input models.ReviewInput) (*models.Review, error)
	UpdateReview(auth models.AuthContext, orderID int64, input models.ReviewInput) (*models.Review, error)
	GetReview(orderID int64) (*models.Review, error)
	ListTranslatorReviews(translatorID, offset, limit int64) ([]models.ReviewView, int64, error)
	DeleteReview(auth models.AuthContext, reviewID int64) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	TranslatorRepo translatorRepo.TranslatorRepository
	OrderRepo      orderRepo.OrderRepository
	ReviewRepo     reviewRepo.ReviewRepository
	UserRepo       userRepo.UserRepository
}
