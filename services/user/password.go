package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "studeaf/database/repository/user"
	"studeaf/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// verificationTokenTTL bounds how long a proven-password window stays open.
const verificationTokenTTL = 5 * time.Minute

// VerifyPassword checks the caller's current password and, on success, issues
// a short-lived single-use token authorizing a password change.
func (s *DefaultUserService) VerifyPassword(userID int64, password string) (string, error) {
	userObj, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return "", utils.NotFoundError("USER_NOT_FOUND", "user not found")
		}
		utils.GetLogger().Error("VerifyPassword: lookup failed", zap.Error(err))
		return "", fmt.Errorf("verification failed: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(password)); err != nil {
		return "", utils.ValidationError("WRONG_PASSWORD", "password is incorrect")
	}

	token, err := utils.GenerateVerificationToken(userID, verificationTokenTTL)
	if err != nil {
		utils.GetLogger().Error("VerifyPassword: failed to issue token", zap.Error(err))
		return "", fmt.Errorf("verification failed: %w", err)
	}
	return token, nil
}

// ChangePassword consumes a verification token and sets the new password.
// The token's jti is burned in Redis so it cannot authorize a second change.
func (s *DefaultUserService) ChangePassword(token, newPassword string) error {
	userID, jti, err := utils.ExtractVerificationClaims(token)
	if err != nil {
		return utils.ValidationError("INVALID_TOKEN", "verification token is invalid or expired")
	}
	if len(newPassword) < 8 {
		return utils.ValidationError("WEAK_PASSWORD", "password must be at least 8 characters")
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	burnKey := utils.UsedTokenPrefix + jti
	set, err := client.SetNX(ctx, burnKey, "1", verificationTokenTTL).Result()
	if err != nil {
		utils.GetLogger().Error("ChangePassword: failed to burn token", zap.Error(err))
		return fmt.Errorf("password change failed: %w", err)
	}
	if !set {
		return utils.ConflictError("TOKEN_USED", "verification token has already been used")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ChangePassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("password change failed: %w", err)
	}
	setDoc := bson.M{"password_hash": string(hashed), "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(userID, setDoc); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return utils.NotFoundError("USER_NOT_FOUND", "user not found")
		}
		utils.GetLogger().Error("ChangePassword: update failed", zap.Error(err))
		return fmt.Errorf("password change failed: %w", err)
	}
	return nil
}
