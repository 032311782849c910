package booking

import (
	"errors"
	"fmt"
	"time"

	orderRepo "studeaf/database/repository/order"
	translatorRepo "studeaf/database/repository/translator"
	"studeaf/models"
	"studeaf/utils"

	"go.uber.org/zap"
)

// CreateOrder places a booking against an available translator. Interpreter
// and hearing-user accounts cannot place orders.
func (s *DefaultBookingService) CreateOrder(auth models.AuthContext, translatorID int64, details models.OrderDetails) (*models.Order, error) {
	if auth.Role == models.RoleJBI || auth.Role == models.RoleDengar {
		return nil, utils.ForbiddenError("FORBIDDEN", "this account type cannot place orders")
	}

	slot, err := models.ParseTimeSlot(details.TimeSlot)
	if err != nil {
		return nil, utils.ValidationError("INVALID_TIME_SLOT", err.Error())
	}
	if _, err := time.Parse("2006-01-02", details.Date); err != nil {
		return nil, utils.ValidationError("INVALID_DATE", "date must be YYYY-MM-DD")
	}
	if n := len(details.Description); n < 1 || n > 500 {
		return nil, utils.ValidationError("INVALID_DESCRIPTION", "description must be 1-500 characters")
	}

	translator, err := s.GetTranslator(translatorID)
	if err != nil {
		return nil, err
	}
	if !translator.Availability {
		return nil, utils.ConflictError("TRANSLATOR_UNAVAILABLE", "translator is not available")
	}

	order := models.Order{
		Date:         details.Date,
		TimeSlot:     slot,
		Description:  details.Description,
		Status:       models.OrderPending,
		UserID:       auth.UserID,
		TranslatorID: translatorID,
	}
	if err := s.OrderRepo.Create(&order); err != nil {
		utils.GetLogger().Error("CreateOrder: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// GetOrder returns an order visible to its owner, the booked translator's
// owner, or an admin.
func (s *DefaultBookingService) GetOrder(auth models.AuthContext, id int64) (*models.Order, error) {
	order, err := s.fetchOrder(id)
	if err != nil {
		return nil, err
	}
	if order.UserID == auth.UserID || auth.IsAdmin() {
		return order, nil
	}
	translator, err := s.TranslatorRepo.GetByID(order.TranslatorID)
	if err == nil && translator.UserID == auth.UserID {
		return order, nil
	}
	return nil, utils.ForbiddenError("FORBIDDEN", "you may not view this order")
}

// UpdateOrderStatus applies one edge of the transition table.
func (s *DefaultBookingService) UpdateOrderStatus(auth models.AuthContext, orderID int64, target models.OrderStatus) (*models.Order, error) {
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeTransition(auth, order, target); err != nil {
		return nil, err
	}

	updated, err := s.OrderRepo.UpdateStatus(orderID, target)
	if err != nil {
		if errors.Is(err, orderRepo.ErrNotFound) {
			return nil, utils.NotFoundError("ORDER_NOT_FOUND", "order not found")
		}
		utils.GetLogger().Error("UpdateOrderStatus: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return updated, nil
}

// CompleteOrder is the owner's shortcut for the confirmed->completed edge.
func (s *DefaultBookingService) CompleteOrder(auth models.AuthContext, orderID int64) (*models.Order, error) {
	return s.UpdateOrderStatus(auth, orderID, models.OrderCompleted)
}

// ListUserOrders returns the caller's own orders, paginated with a total.
func (s *DefaultBookingService) ListUserOrders(auth models.AuthContext, offset, limit int64) ([]models.Order, int64, error) {
	orders, total, err := s.OrderRepo.ListByUser(auth.UserID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// ListTranslatorOrders returns the orders booked on the caller's translator
// profile. NotFound when the caller has no profile.
func (s *DefaultBookingService) ListTranslatorOrders(auth models.AuthContext, offset, limit int64) ([]models.Order, int64, error) {
	translator, err := s.TranslatorRepo.GetByUserID(auth.UserID)
	if err != nil {
		if errors.Is(err, translatorRepo.ErrNotFound) {
			return nil, 0, utils.NotFoundError("TRANSLATOR_NOT_FOUND", "you have no translator profile")
		}
		return nil, 0, fmt.Errorf("failed to resolve translator profile: %w", err)
	}
	orders, total, err := s.OrderRepo.ListByTranslator(translator.ID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

func (s *DefaultBookingService) fetchOrder(id int64) (*models.Order, error) {
	order, err := s.OrderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrNotFound) {
			return nil, utils.NotFoundError("ORDER_NOT_FOUND", "order not found")
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return order, nil
}
