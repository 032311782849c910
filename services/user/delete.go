package user

import (
	"errors"
	"fmt"

	translatorRepo "studeaf/database/repository/translator"
	userRepo "studeaf/database/repository/user"
	"studeaf/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DeleteAccount removes the account after re-checking the password, then
// cascades: the user's translator profile (with its orders and reviews), the
// orders the user placed, their forum posts, summaries, and feedback entries.
func (s *DefaultUserService) DeleteAccount(userID int64, password string) error {
	userObj, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return utils.NotFoundError("USER_NOT_FOUND", "user not found")
		}
		utils.GetLogger().Error("DeleteAccount: lookup failed", zap.Error(err))
		return fmt.Errorf("account deletion failed: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(password)); err != nil {
		return utils.ValidationError("WRONG_PASSWORD", "password is incorrect")
	}

	// Translator side: the profile the user owns, plus everything booked on it.
	translator, err := s.TranslatorRepo.GetByUserID(userID)
	if err != nil && !errors.Is(err, translatorRepo.ErrNotFound) {
		utils.GetLogger().Error("DeleteAccount: translator lookup failed", zap.Error(err))
		return fmt.Errorf("account deletion failed: %w", err)
	}
	if translator != nil {
		if _, err := s.OrderRepo.DeleteByTranslator(translator.ID); err != nil {
			return fmt.Errorf("account deletion failed: %w", err)
		}
		if err := s.ReviewRepo.DeleteByTranslator(translator.ID); err != nil {
			return fmt.Errorf("account deletion failed: %w", err)
		}
		if err := s.TranslatorRepo.Delete(translator.ID); err != nil {
			return fmt.Errorf("account deletion failed: %w", err)
		}
	}

	// Customer side: orders the user placed and the reviews on them.
	orderIDs, err := s.OrderRepo.DeleteByUser(userID)
	if err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}
	if err := s.ReviewRepo.DeleteByOrders(orderIDs); err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}

	if err := s.ForumRepo.DeleteByUser(userID); err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}
	if err := s.SummaryRepo.DeleteByUser(userID); err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}
	if err := s.SystemFeedback.DeleteByUser(userID); err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}
	if err := s.DosenFeedback.DeleteByUser(userID); err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}

	if err := s.Repo.Delete(userID); err != nil {
		utils.GetLogger().Error("DeleteAccount: delete failed", zap.Error(err))
		return fmt.Errorf("account deletion failed: %w", err)
	}

	// Revoke any live session.
	if err := s.Logout(userID); err != nil {
		utils.GetLogger().Warn("DeleteAccount: failed to revoke session", zap.Error(err))
	}
	return nil
}
