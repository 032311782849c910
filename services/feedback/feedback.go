package feedback

import (
	"errors"
	"fmt"

	feedbackRepo "studeaf/database/repository/feedback"
	"studeaf/models"
	"studeaf/utils"

	"go.uber.org/zap"
)

func (s *DefaultFeedbackService) repo(ledger Ledger) (feedbackRepo.FeedbackRepository, error) {
	switch ledger {
	case LedgerSystem:
		return s.SystemRepo, nil
	case LedgerDosen:
		return s.DosenRepo, nil
	default:
		return nil, utils.ValidationError("INVALID_LEDGER", fmt.Sprintf("unknown feedback ledger %q", ledger))
	}
}

func validateInput(input models.FeedbackInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return utils.ValidationError("INVALID_RATING", "rating must be between 1 and 5")
	}
	return nil
}

// Submit records the caller's single entry in a ledger.
func (s *DefaultFeedbackService) Submit(auth models.AuthContext, ledger Ledger, input models.FeedbackInput) (*models.Feedback, error) {
	repo, err := s.repo(ledger)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	entry := models.Feedback{
		UserID:      auth.UserID,
		Rating:      input.Rating,
		Description: input.Description,
	}
	if err := repo.Create(&entry); err != nil {
		if errors.Is(err, feedbackRepo.ErrDuplicate) {
			return nil, utils.ConflictError("ALREADY_SUBMITTED", "you have already submitted feedback")
		}
		utils.GetLogger().Error("Submit: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return &entry, nil
}

// GetOwn returns the caller's entry in a ledger.
func (s *DefaultFeedbackService) GetOwn(auth models.AuthContext, ledger Ledger) (*models.Feedback, error) {
	repo, err := s.repo(ledger)
	if err != nil {
		return nil, err
	}
	entry, err := repo.GetByUser(auth.UserID)
	if err != nil {
		if errors.Is(err, feedbackRepo.ErrNotFound) {
			return nil, utils.NotFoundError("FEEDBACK_NOT_FOUND", "feedback not found")
		}
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	return entry, nil
}

// Update replaces an entry's rating and description. Owner or admin.
func (s *DefaultFeedbackService) Update(auth models.AuthContext, ledger Ledger, id int64, input models.FeedbackInput) (*models.Feedback, error) {
	repo, err := s.repo(ledger)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	entry, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, feedbackRepo.ErrNotFound) {
			return nil, utils.NotFoundError("FEEDBACK_NOT_FOUND", "feedback not found")
		}
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	if entry.UserID != auth.UserID && !auth.IsAdmin() {
		return nil, utils.ForbiddenError("FORBIDDEN", "only the author or an admin may update this feedback")
	}

	if err := repo.Update(id, input.Rating, input.Description); err != nil {
		utils.GetLogger().Error("Update: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}
	entry.Rating = input.Rating
	entry.Description = input.Description
	return entry, nil
}

// Delete removes an entry. Owner or admin.
func (s *DefaultFeedbackService) Delete(auth models.AuthContext, ledger Ledger, id int64) error {
	repo, err := s.repo(ledger)
	if err != nil {
		return err
	}
	entry, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, feedbackRepo.ErrNotFound) {
			return utils.NotFoundError("FEEDBACK_NOT_FOUND", "feedback not found")
		}
		return fmt.Errorf("failed to fetch feedback: %w", err)
	}
	if entry.UserID != auth.UserID && !auth.IsAdmin() {
		return utils.ForbiddenError("FORBIDDEN", "only the author or an admin may delete this feedback")
	}
	if err := repo.Delete(id); err != nil {
		utils.GetLogger().Error("Delete: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return nil
}

// List returns a page of a ledger. Admin only.
func (s *DefaultFeedbackService) List(auth models.AuthContext, ledger Ledger, offset, limit int64) ([]models.Feedback, int64, error) {
	repo, err := s.repo(ledger)
	if err != nil {
		return nil, 0, err
	}
	if !auth.IsAdmin() {
		return nil, 0, utils.ForbiddenError("FORBIDDEN", "only admins may list feedback")
	}
	entries, total, err := repo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, total, nil
}
