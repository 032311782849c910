package forumRepo

import "studeaf/models"

// ForumRepository defines methods for forum data access.
type ForumRepository interface {
	// Create inserts a new forum post, assigning its id.
	Create(forum *models.Forum) error
	// GetByID retrieves a forum post by its unique ID.
	GetByID(id int64) (*models.Forum, error)
	// List returns forum posts matching the filter, newest first.
	List(filter models.ForumFilter) ([]models.Forum, error)
	// Update patches a forum post's editable fields.
	Update(forum *models.Forum) error
	// Delete removes a forum post together with its comments and likes.
	Delete(id int64) error
	// DeleteByUser removes all of a user's posts with their comments and likes.
	DeleteByUser(userID int64) error

	// CreateComment inserts a comment on a forum post, assigning its id.
	CreateComment(comment *models.ForumComment) error
	// ListComments returns a forum post's comments in insertion order.
	ListComments(forumID int64) ([]models.ForumComment, error)
	// CountComments counts a forum post's comments.
	CountComments(forumID int64) (int64, error)

	// ToggleLike flips a user's like on a post; reports the resulting state.
	ToggleLike(forumID, userID int64) (bool, error)
	// CountLikes counts a forum post's likes.
	CountLikes(forumID int64) (int64, error)
	// HasLiked reports whether a user has liked a post.
	HasLiked(forumID, userID int64) (bool, error)
}
