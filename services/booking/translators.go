package booking

import (
	"errors"
	"fmt"

	translatorRepo "studeaf/database/repository/translator"
	"studeaf/models"
	"studeaf/utils"

	"go.uber.org/zap"
)

// CreateTranslator registers a new directory profile on behalf of the given
// owner account. Admin only; availability starts true unless set.
func (s *DefaultBookingService) CreateTranslator(auth models.AuthContext, profile models.TranslatorProfile, ownerID int64) (*models.Translator, error) {
	if !auth.IsAdmin() {
		return nil, utils.ForbiddenError("FORBIDDEN", "only admins may create translators")
	}
	if profile.Name == "" {
		return nil, utils.ValidationError("VALIDATION_ERROR", "translator name is required")
	}

	translator := models.Translator{
		Name:         profile.Name,
		Address:      profile.Address,
		Availability: true,
		ProfilePic:   profile.ProfilePic,
		UserID:       ownerID,
	}
	if err := s.TranslatorRepo.Create(&translator); err != nil {
		utils.GetLogger().Error("CreateTranslator: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}
	return &translator, nil
}

// GetTranslator returns a directory profile by id.
func (s *DefaultBookingService) GetTranslator(id int64) (*models.Translator, error) {
	translator, err := s.TranslatorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, translatorRepo.ErrNotFound) {
			return nil, utils.NotFoundError("TRANSLATOR_NOT_FOUND", "translator not found")
		}
		return nil, fmt.Errorf("failed to fetch translator: %w", err)
	}
	return translator, nil
}

// ListTranslators returns a page of the directory plus the total count.
func (s *DefaultBookingService) ListTranslators(offset, limit int64) ([]models.Translator, int64, error) {
	translators, total, err := s.TranslatorRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list translators: %w", err)
	}
	return translators, total, nil
}

// UpdateTranslator fully replaces a profile's fields. Owner only; the update
// payload mirrors the create payload, so omitted fields are zeroed.
func (s *DefaultBookingService) UpdateTranslator(auth models.AuthContext, id int64, profile models.TranslatorProfile) (*models.Translator, error) {
	translator, err := s.GetTranslator(id)
	if err != nil {
		return nil, err
	}
	if translator.UserID != auth.UserID {
		return nil, utils.ForbiddenError("FORBIDDEN", "only the owner may update this translator")
	}

	translator.Name = profile.Name
	translator.Address = profile.Address
	translator.Availability = profile.Availability
	translator.ProfilePic = profile.ProfilePic
	if err := s.TranslatorRepo.Update(translator); err != nil {
		utils.GetLogger().Error("UpdateTranslator: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update translator: %w", err)
	}
	return translator, nil
}

// DeleteTranslator removes a profile. Admin only; refused while pending or
// confirmed orders still reference it, otherwise historical orders and their
// reviews are cascaded.
func (s *DefaultBookingService) DeleteTranslator(auth models.AuthContext, id int64) error {
	if !auth.IsAdmin() {
		return utils.ForbiddenError("FORBIDDEN", "only admins may delete translators")
	}
	if _, err := s.GetTranslator(id); err != nil {
		return err
	}

	active, err := s.OrderRepo.CountActiveByTranslator(id)
	if err != nil {
		return fmt.Errorf("failed to count active orders: %w", err)
	}
	if active > 0 {
		return utils.ConflictError("ACTIVE_ORDERS", "translator still has pending or confirmed orders")
	}

	if _, err := s.OrderRepo.DeleteByTranslator(id); err != nil {
		return fmt.Errorf("failed to cascade orders: %w", err)
	}
	if err := s.ReviewRepo.DeleteByTranslator(id); err != nil {
		return fmt.Errorf("failed to cascade reviews: %w", err)
	}
	if err := s.TranslatorRepo.Delete(id); err != nil {
		utils.GetLogger().Error("DeleteTranslator: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete translator: %w", err)
	}
	return nil
}
