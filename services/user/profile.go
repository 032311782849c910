package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "studeaf/database/repository/user"
	"studeaf/models"
	"studeaf/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetProfile returns the caller's account record.
func (s *DefaultUserService) GetProfile(userID int64) (*models.User, error) {
	userObj, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NotFoundError("USER_NOT_FOUND", "user not found")
		}
		utils.GetLogger().Error("GetProfile: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return userObj, nil
}

// UpdateProfile applies the non-nil fields of the update and returns the
// refreshed record.
func (s *DefaultUserService) UpdateProfile(userID int64, update models.UserProfileUpdate) (*models.User, error) {
	setDoc := bson.M{}
	if update.FullName != nil {
		setDoc["full_name"] = *update.FullName
	}
	if update.BirthDate != nil {
		if _, err := time.Parse("2006-01-02", *update.BirthDate); err != nil {
			return nil, utils.ValidationError("INVALID_BIRTH_DATE", "birth_date must be YYYY-MM-DD")
		}
		setDoc["birth_date"] = *update.BirthDate
	}
	if update.Institution != nil {
		setDoc["institution"] = *update.Institution
	}
	if update.ProfilePictureURL != nil {
		setDoc["profile_picture_url"] = *update.ProfilePictureURL
	}
	if len(setDoc) == 0 {
		return s.GetProfile(userID)
	}
	setDoc["updated_at"] = time.Now()

	if err := s.Repo.UpdateSetDocument(userID, setDoc); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NotFoundError("USER_NOT_FOUND", "user not found")
		}
		utils.GetLogger().Error("UpdateProfile: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetProfile(userID)
}
