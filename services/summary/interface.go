package summary

import (
	summaryRepo "studeaf/database/repository/summary"
	userRepo "studeaf/database/repository/user"
	"studeaf/models"
)

type SummaryService interface {
	CreateDraft(auth models.AuthContext, content string) (*models.Summary, error)
	GetSummary(auth models.AuthContext, id int64) (*models.SummaryView, error)
	ListSummaries(auth models.AuthContext) ([]models.SummaryView, error)
	UpdateDraft(auth models.AuthContext, id int64, content string) (*models.Summary, error)
	Publish(auth models.AuthContext, id int64, meta models.SummaryPublish) (*models.Summary, error)
	DeleteSummary(auth models.AuthContext, id int64) error

	AddComment(auth models.AuthContext, summaryID int64, content string) (*models.SummaryComment, error)
	ToggleLike(auth models.AuthContext, summaryID int64) (bool, error)
	ToggleBookmark(auth models.AuthContext, summaryID int64) (bool, error)
}

// DefaultSummaryService is the production implementation.
type DefaultSummaryService struct {
	Repo     summaryRepo.SummaryRepository
	UserRepo userRepo.UserRepository
}
