package summary

import (
	"errors"
	"fmt"

	summaryRepo "studeaf/database/repository/summary"
	"studeaf/models"
	"studeaf/utils"

	"go.uber.org/zap"
)

// publishReward is the points bonus credited on first publication.
const publishReward = 10

// CreateDraft stores a new private draft holding only content.
func (s *DefaultSummaryService) CreateDraft(auth models.AuthContext, content string) (*models.Summary, error) {
	if content == "" {
		return nil, utils.ValidationError("VALIDATION_ERROR", "content is required")
	}
	draft := models.Summary{
		Content: content,
		UserID:  auth.UserID,
	}
	if err := s.Repo.Create(&draft); err != nil {
		utils.GetLogger().Error("CreateDraft: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return &draft, nil
}

// GetSummary returns a summary with its comments and counters. Unpublished
// drafts are visible to their owner only.
func (s *DefaultSummaryService) GetSummary(auth models.AuthContext, id int64) (*models.SummaryView, error) {
	sum, err := s.fetchSummary(id)
	if err != nil {
		return nil, err
	}
	if !sum.IsPublished && sum.UserID != auth.UserID {
		return nil, utils.ForbiddenError("FORBIDDEN", "this summary is not published")
	}

	comments, err := s.Repo.ListComments(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	ids := []int64{sum.UserID}
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	names := s.resolveNames(ids)

	view, err := s.buildView(auth, *sum, names)
	if err != nil {
		return nil, err
	}
	view.Comments = make([]models.SummaryCommentView, 0, len(comments))
	for _, c := range comments {
		view.Comments = append(view.Comments, models.SummaryCommentView{
			SummaryComment: c,
			UserName:       names[c.UserID],
		})
	}
	return view, nil
}

// ListSummaries returns the caller's own summaries plus everyone else's
// published ones.
func (s *DefaultSummaryService) ListSummaries(auth models.AuthContext) ([]models.SummaryView, error) {
	summaries, err := s.Repo.ListVisible(auth.UserID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	ids := make([]int64, 0, len(summaries))
	for _, sum := range summaries {
		ids = append(ids, sum.UserID)
	}
	names := s.resolveNames(ids)

	views := make([]models.SummaryView, 0, len(summaries))
	for _, sum := range summaries {
		view, err := s.buildView(auth, sum, names)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// UpdateDraft replaces a draft's content. Owner only; published summaries
// are immutable.
func (s *DefaultSummaryService) UpdateDraft(auth models.AuthContext, id int64, content string) (*models.Summary, error) {
	if content == "" {
		return nil, utils.ValidationError("VALIDATION_ERROR", "content is required")
	}
	sum, err := s.fetchSummary(id)
	if err != nil {
		return nil, err
	}
	if sum.UserID != auth.UserID {
		return nil, utils.ForbiddenError("FORBIDDEN", "only the author may edit this summary")
	}
	if sum.IsPublished {
		return nil, utils.ConflictError("ALREADY_PUBLISHED", "published summaries cannot be edited")
	}
	if err := s.Repo.UpdateContent(id, content); err != nil {
		utils.GetLogger().Error("UpdateDraft: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return s.fetchSummary(id)
}

// Publish makes a draft public, attaches its metadata and credits the author
// the publication bonus. Irreversible; a summary publishes at most once.
func (s *DefaultSummaryService) Publish(auth models.AuthContext, id int64, meta models.SummaryPublish) (*models.Summary, error) {
	if meta.Title == "" || meta.Topic == "" {
		return nil, utils.ValidationError("VALIDATION_ERROR", "title and topic are required")
	}
	sum, err := s.fetchSummary(id)
	if err != nil {
		return nil, err
	}
	if sum.UserID != auth.UserID {
		return nil, utils.ForbiddenError("FORBIDDEN", "only the author may publish this summary")
	}
	if sum.IsPublished {
		return nil, utils.ConflictError("ALREADY_PUBLISHED", "this summary is already published")
	}

	if err := s.Repo.Publish(id, meta); err != nil {
		utils.GetLogger().Error("Publish: publish failed", zap.Error(err))
		return nil, fmt.Errorf("failed to publish summary: %w", err)
	}
	if err := s.UserRepo.IncrementPoints(auth.UserID, publishReward); err != nil {
		utils.GetLogger().Warn("Publish: failed to credit points", zap.Error(err))
	}
	return s.fetchSummary(id)
}

// DeleteSummary removes a summary with its comments and reactions. Owner or
// admin.
func (s *DefaultSummaryService) DeleteSummary(auth models.AuthContext, id int64) error {
	sum, err := s.fetchSummary(id)
	if err != nil {
		return err
	}
	if sum.UserID != auth.UserID && !auth.IsAdmin() {
		return utils.ForbiddenError("FORBIDDEN", "only the author or an admin may delete this summary")
	}
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("DeleteSummary: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	return nil
}

// AddComment appends a comment to a published summary.
func (s *DefaultSummaryService) AddComment(auth models.AuthContext, summaryID int64, content string) (*models.SummaryComment, error) {
	if content == "" {
		return nil, utils.ValidationError("VALIDATION_ERROR", "comment content is required")
	}
	sum, err := s.fetchSummary(summaryID)
	if err != nil {
		return nil, err
	}
	if !sum.IsPublished {
		return nil, utils.ConflictError("NOT_PUBLISHED", "only published summaries can be commented on")
	}
	comment := models.SummaryComment{
		Content:   content,
		UserID:    auth.UserID,
		SummaryID: summaryID,
	}
	if err := s.Repo.CreateComment(&comment); err != nil {
		utils.GetLogger().Error("AddComment: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &comment, nil
}

// ToggleLike flips the caller's like and reports the new state.
func (s *DefaultSummaryService) ToggleLike(auth models.AuthContext, summaryID int64) (bool, error) {
	return s.toggleReaction(auth, summaryID, models.ReactionLike)
}

// ToggleBookmark flips the caller's bookmark and reports the new state.
func (s *DefaultSummaryService) ToggleBookmark(auth models.AuthContext, summaryID int64) (bool, error) {
	return s.toggleReaction(auth, summaryID, models.ReactionBookmark)
}

func (s *DefaultSummaryService) toggleReaction(auth models.AuthContext, summaryID int64, kind string) (bool, error) {
	sum, err := s.fetchSummary(summaryID)
	if err != nil {
		return false, err
	}
	if !sum.IsPublished {
		return false, utils.ConflictError("NOT_PUBLISHED", "only published summaries can be reacted to")
	}
	on, err := s.Repo.ToggleReaction(summaryID, auth.UserID, kind)
	if err != nil {
		utils.GetLogger().Error("toggleReaction: toggle failed", zap.Error(err))
		return false, fmt.Errorf("failed to toggle %s: %w", kind, err)
	}
	return on, nil
}

func (s *DefaultSummaryService) fetchSummary(id int64) (*models.Summary, error) {
	sum, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, summaryRepo.ErrNotFound) {
			return nil, utils.NotFoundError("SUMMARY_NOT_FOUND", "summary not found")
		}
		return nil, fmt.Errorf("failed to fetch summary: %w", err)
	}
	return sum, nil
}

func (s *DefaultSummaryService) buildView(auth models.AuthContext, sum models.Summary, names map[int64]string) (*models.SummaryView, error) {
	likeCount, err := s.Repo.CountReactions(sum.ID, models.ReactionLike)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	bookmarkCount, err := s.Repo.CountReactions(sum.ID, models.ReactionBookmark)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	commentCount, err := s.Repo.CountComments(sum.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	hasLiked, err := s.Repo.HasReacted(sum.ID, auth.UserID, models.ReactionLike)
	if err != nil {
		return nil, fmt.Errorf("failed to check like state: %w", err)
	}
	hasBookmarked, err := s.Repo.HasReacted(sum.ID, auth.UserID, models.ReactionBookmark)
	if err != nil {
		return nil, fmt.Errorf("failed to check bookmark state: %w", err)
	}
	return &models.SummaryView{
		Summary:       sum,
		UserName:      names[sum.UserID],
		LikeCount:     likeCount,
		CommentCount:  commentCount,
		BookmarkCount: bookmarkCount,
		HasLiked:      hasLiked,
		HasBookmarked: hasBookmarked,
		Comments:      []models.SummaryCommentView{},
	}, nil
}

func (s *DefaultSummaryService) resolveNames(ids []int64) map[int64]string {
	names, err := s.UserRepo.GetNamesByIDs(ids)
	if err != nil {
		utils.GetLogger().Warn("resolveNames: lookup failed", zap.Error(err))
		return map[int64]string{}
	}
	return names
}
