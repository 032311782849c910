package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studeaf/config"
	userRepo "studeaf/database/repository/user"
	"studeaf/models"
	"studeaf/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the signup payload, hashes the password, and persists a
// new active account. The email must be unused.
func (s *DefaultUserService) Register(input models.UserRegistration) (*AuthResponse, error) {
	role, err := models.ParseRole(input.IdentityType)
	if err != nil {
		return nil, utils.ValidationError("INVALID_ROLE", err.Error())
	}
	if _, err := time.Parse("2006-01-02", input.BirthDate); err != nil {
		return nil, utils.ValidationError("INVALID_BIRTH_DATE", "birth_date must be YYYY-MM-DD")
	}
	if len(input.Password) < 8 {
		return nil, utils.ValidationError("WEAK_PASSWORD", "password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError("EMAIL_EXISTS", "a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	userObj := models.User{
		Email:        input.Email,
		FullName:     input.FullName,
		BirthDate:    input.BirthDate,
		PasswordHash: string(hashed),
		IsActive:     true,
		IdentityType: role,
		Institution:  input.Institution,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.issueToken(&userObj)
}

// Login checks the credentials and issues a fresh token.
func (s *DefaultUserService) Login(email, password string) (*AuthResponse, error) {
	userObj, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.ValidationError("INVALID_CREDENTIALS", "email or password is incorrect")
		}
		utils.GetLogger().Error("Login: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if !userObj.IsActive {
		return nil, utils.ForbiddenError("ACCOUNT_INACTIVE", "this account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userObj.PasswordHash), []byte(password)); err != nil {
		return nil, utils.ValidationError("INVALID_CREDENTIALS", "email or password is incorrect")
	}
	return s.issueToken(userObj)
}

// Logout drops the caller's cached token hash, revoking the session.
func (s *DefaultUserService) Logout(userID int64) error {
	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf("%s%d", utils.AuthCachePrefix, userID)
	if err := client.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Error("Logout: failed to drop auth cache entry", zap.Error(err))
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// issueToken signs a JWT for the account and caches its hash so the auth
// middleware can validate without a database round trip.
func (s *DefaultUserService) issueToken(userObj *models.User) (*AuthResponse, error) {
	expiry := time.Duration(config.AppConfig.TokenExpiryHours) * time.Hour
	token, err := utils.GenerateToken(userObj.ID, string(userObj.IdentityType), expiry)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	key := fmt.Sprintf("%s%d", utils.AuthCachePrefix, userObj.ID)
	if err := client.Set(ctx, key, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:           userObj.ID,
		Token:        token,
		Email:        userObj.Email,
		FullName:     userObj.FullName,
		IdentityType: userObj.IdentityType,
	}, nil
}
