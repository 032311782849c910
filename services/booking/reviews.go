package booking

import (
	"errors"
	"fmt"

	reviewRepo "studeaf/database/repository/review"
	"studeaf/models"
	"studeaf/utils"

	"go.uber.org/zap"
)

func validateReviewInput(input models.ReviewInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return utils.ValidationError("INVALID_RATING", "rating must be between 1 and 5")
	}
	if len(input.Description) > 1000 {
		return utils.ValidationError("INVALID_DESCRIPTION", "description must be at most 1000 characters")
	}
	return nil
}

// CreateReview attaches the single review a completed order may carry. Only
// the order's owner may review, and only after completion. The unique index
// on the order id makes the once-per-order rule hold under concurrency.
func (s *DefaultBookingService) CreateReview(auth models.AuthContext, orderID int64, input models.ReviewInput) (*models.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != auth.UserID {
		return nil, utils.ForbiddenError("FORBIDDEN", "only the order's owner may review it")
	}
	if order.Status != models.OrderCompleted {
		return nil, utils.ConflictError("ORDER_NOT_COMPLETED", "only completed orders can be reviewed")
	}

	review := models.Review{
		OrderID:      orderID,
		UserID:       auth.UserID,
		TranslatorID: order.TranslatorID,
		Rating:       input.Rating,
		Description:  input.Description,
	}
	if err := s.ReviewRepo.Create(&review); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			return nil, utils.ConflictError("ALREADY_REVIEWED", "this order has already been reviewed")
		}
		utils.GetLogger().Error("CreateReview: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// UpdateReview fully replaces the rating and description of an order's
// review. Owner only.
func (s *DefaultBookingService) UpdateReview(auth models.AuthContext, orderID int64, input models.ReviewInput) (*models.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}
	review, err := s.GetReview(orderID)
	if err != nil {
		return nil, err
	}
	if review.UserID != auth.UserID {
		return nil, utils.ForbiddenError("FORBIDDEN", "only the review's author may update it")
	}

	review.Rating = input.Rating
	review.Description = input.Description
	if err := s.ReviewRepo.Update(review); err != nil {
		utils.GetLogger().Error("UpdateReview: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return review, nil
}

// GetReview returns the review attached to an order.
func (s *DefaultBookingService) GetReview(orderID int64) (*models.Review, error) {
	review, err := s.ReviewRepo.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, utils.NotFoundError("REVIEW_NOT_FOUND", "review not found")
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return review, nil
}

// ListTranslatorReviews returns a translator's reviews newest-first,
// enriched with reviewer names.
func (s *DefaultBookingService) ListTranslatorReviews(translatorID, offset, limit int64) ([]models.ReviewView, int64, error) {
	if _, err := s.GetTranslator(translatorID); err != nil {
		return nil, 0, err
	}
	reviews, total, err := s.ReviewRepo.ListByTranslator(translatorID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	ids := make([]int64, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.UserID)
	}
	names, err := s.UserRepo.GetNamesByIDs(ids)
	if err != nil {
		utils.GetLogger().Warn("ListTranslatorReviews: name lookup failed", zap.Error(err))
		names = map[int64]string{}
	}

	views := make([]models.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, models.ReviewView{Review: r, UserName: names[r.UserID]})
	}
	return views, total, nil
}

// DeleteReview removes a review. Admin or author only.
func (s *DefaultBookingService) DeleteReview(auth models.AuthContext, reviewID int64) error {
	review, err := s.ReviewRepo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return utils.NotFoundError("REVIEW_NOT_FOUND", "review not found")
		}
		return fmt.Errorf("failed to fetch review: %w", err)
	}
	if !auth.IsAdmin() && review.UserID != auth.UserID {
		return utils.ForbiddenError("FORBIDDEN", "only the author or an admin may delete this review")
	}
	if err := s.ReviewRepo.Delete(reviewID); err != nil {
		utils.GetLogger().Error("DeleteReview: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
