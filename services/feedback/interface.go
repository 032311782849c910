package feedback

import (
	feedbackRepo "studeaf/database/repository/feedback"
	"studeaf/models"
)

// Ledger names the two feedback ledgers the platform keeps.
type Ledger string

const (
	LedgerSystem Ledger = "system" // feedback about the platform itself
	LedgerDosen  Ledger = "dosen"  // feedback about lecturers
)

type FeedbackService interface {
	Submit(auth models.AuthContext, ledger Ledger, input models.FeedbackInput) (*models.Feedback, error)
	GetOwn(auth models.AuthContext, ledger Ledger) (*models.Feedback, error)
	Update(auth models.AuthContext, ledger Ledger, id int64, input models.FeedbackInput) (*models.Feedback, error)
	Delete(auth models.AuthContext, ledger Ledger, id int64) error
	List(auth models.AuthContext, ledger Ledger, offset, limit int64) ([]models.Feedback, int64, error)
}

// DefaultFeedbackService is the production implementation, one repository
// per ledger.
type DefaultFeedbackService struct {
	SystemRepo feedbackRepo.FeedbackRepository
	DosenRepo  feedbackRepo.FeedbackRepository
}
