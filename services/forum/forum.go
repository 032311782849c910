package forum

import (
	"errors"
	"fmt"

	forumRepo "studeaf/database/repository/forum"
	"studeaf/models"
	"studeaf/utils"

	"go.uber.org/zap"
)

func validateInput(input models.ForumInput) error {
	if input.Title == "" || input.Topic == "" || input.Body == "" {
		return utils.ValidationError("VALIDATION_ERROR", "title, topic and body are required")
	}
	return nil
}

// CreatePost publishes a new discussion post authored by the caller.
func (s *DefaultForumService) CreatePost(auth models.AuthContext, input models.ForumInput) (*models.Forum, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	post := models.Forum{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Topic:    input.Topic,
		Body:     input.Body,
		ImageURL: input.ImageURL,
		UserID:   auth.UserID,
	}
	if err := s.Repo.Create(&post); err != nil {
		utils.GetLogger().Error("CreatePost: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

// GetPost returns a post with its comments, counters and the caller's like
// state.
func (s *DefaultForumService) GetPost(auth models.AuthContext, id int64) (*models.ForumView, error) {
	post, err := s.fetchPost(id)
	if err != nil {
		return nil, err
	}
	comments, err := s.Repo.ListComments(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	ids := []int64{post.UserID}
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	names := s.resolveNames(ids)

	view, err := s.buildView(auth, *post, names)
	if err != nil {
		return nil, err
	}
	view.Comments = make([]models.CommentView, 0, len(comments))
	for _, c := range comments {
		view.Comments = append(view.Comments, models.CommentView{
			ForumComment: c,
			UserName:     names[c.UserID],
		})
	}
	return view, nil
}

// ListPosts returns posts matching the filter, enriched with author names
// and counters but without comment bodies.
func (s *DefaultForumService) ListPosts(auth models.AuthContext, filter models.ForumFilter) ([]models.ForumView, error) {
	posts, err := s.Repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.UserID)
	}
	names := s.resolveNames(ids)

	views := make([]models.ForumView, 0, len(posts))
	for _, p := range posts {
		view, err := s.buildView(auth, p, names)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// UpdatePost replaces a post's editable fields. Owner only.
func (s *DefaultForumService) UpdatePost(auth models.AuthContext, id int64, input models.ForumInput) (*models.Forum, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	post, err := s.fetchPost(id)
	if err != nil {
		return nil, err
	}
	if post.UserID != auth.UserID {
		return nil, utils.ForbiddenError("FORBIDDEN", "only the author may update this post")
	}

	post.Title = input.Title
	post.Subtitle = input.Subtitle
	post.Topic = input.Topic
	post.Body = input.Body
	post.ImageURL = input.ImageURL
	if err := s.Repo.Update(post); err != nil {
		utils.GetLogger().Error("UpdatePost: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post with its comments and likes. Owner or admin.
func (s *DefaultForumService) DeletePost(auth models.AuthContext, id int64) error {
	post, err := s.fetchPost(id)
	if err != nil {
		return err
	}
	if post.UserID != auth.UserID && !auth.IsAdmin() {
		return utils.ForbiddenError("FORBIDDEN", "only the author or an admin may delete this post")
	}
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("DeletePost: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// AddComment appends a comment to a post.
func (s *DefaultForumService) AddComment(auth models.AuthContext, forumID int64, content string) (*models.ForumComment, error) {
	if content == "" {
		return nil, utils.ValidationError("VALIDATION_ERROR", "comment content is required")
	}
	if _, err := s.fetchPost(forumID); err != nil {
		return nil, err
	}
	comment := models.ForumComment{
		Content: content,
		UserID:  auth.UserID,
		ForumID: forumID,
	}
	if err := s.Repo.CreateComment(&comment); err != nil {
		utils.GetLogger().Error("AddComment: create failed", zap.Error(err))
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &comment, nil
}

// ToggleLike flips the caller's like on a post and reports the new state.
func (s *DefaultForumService) ToggleLike(auth models.AuthContext, forumID int64) (bool, error) {
	if _, err := s.fetchPost(forumID); err != nil {
		return false, err
	}
	liked, err := s.Repo.ToggleLike(forumID, auth.UserID)
	if err != nil {
		utils.GetLogger().Error("ToggleLike: toggle failed", zap.Error(err))
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	return liked, nil
}

func (s *DefaultForumService) fetchPost(id int64) (*models.Forum, error) {
	post, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, forumRepo.ErrNotFound) {
			return nil, utils.NotFoundError("FORUM_NOT_FOUND", "forum post not found")
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

func (s *DefaultForumService) buildView(auth models.AuthContext, post models.Forum, names map[int64]string) (*models.ForumView, error) {
	likeCount, err := s.Repo.CountLikes(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	commentCount, err := s.Repo.CountComments(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	hasLiked, err := s.Repo.HasLiked(post.ID, auth.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check like state: %w", err)
	}
	return &models.ForumView{
		Forum:        post,
		UserName:     names[post.UserID],
		LikeCount:    likeCount,
		CommentCount: commentCount,
		HasLiked:     hasLiked,
		Comments:     []models.CommentView{},
	}, nil
}

func (s *DefaultForumService) resolveNames(ids []int64) map[int64]string {
	names, err := s.UserRepo.GetNamesByIDs(ids)
	if err != nil {
		utils.GetLogger().Warn("resolveNames: lookup failed", zap.Error(err))
		return map[int64]string{}
	}
	return names
}
