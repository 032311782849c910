package user

import (
	feedbackRepo "studeaf/database/repository/feedback"
	forumRepo "studeaf/database/repository/forum"
	orderRepo "studeaf/database/repository/order"
	reviewRepo "studeaf/database/repository/review"
	summaryRepo "studeaf/database/repository/summary"
	translatorRepo "studeaf/database/repository/translator"
	userRepo "studeaf/database/repository/user"
	"studeaf/models"
)

type UserService interface {
	// Registration & authentication
	Register(input models.UserRegistration) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	Logout(userID int64) error

	// Profile
	GetProfile(userID int64) (*models.User, error)
	UpdateProfile(userID int64, update models.UserProfileUpdate) (*models.User, error)

	// Password change is a two-step flow: the caller proves the current
	// password and receives a short-lived single-use token, then presents
	// that token alongside the new password.
	VerifyPassword(userID int64, password string) (string, error)
	ChangePassword(token, newPassword string) error

	// DeleteAccount removes the user and everything hanging off it.
	DeleteAccount(userID int64, password string) error
}

// DefaultUserService is the production implementation. Account deletion
// fans out across the other repositories, so it holds them all.
type DefaultUserService struct {
	Repo           userRepo.UserRepository
	TranslatorRepo translatorRepo.TranslatorRepository
	OrderRepo      orderRepo.OrderRepository
	ReviewRepo     reviewRepo.ReviewRepository
	ForumRepo      forumRepo.ForumRepository
	SummaryRepo    summaryRepo.SummaryRepository
	SystemFeedback feedbackRepo.FeedbackRepository
	DosenFeedback  feedbackRepo.FeedbackRepository
}

// AuthResponse carries the issued token together with the account basics.
type AuthResponse struct {
	ID           int64       `json:"id"`
	Token        string      `json:"token"`
	Email        string      `json:"email"`
	FullName     string      `json:"full_name"`
	IdentityType models.Role `json:"identity_type"`
}
