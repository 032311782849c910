package forum

import (
	forumRepo "studeaf/database/repository/forum"
	userRepo "studeaf/database/repository/user"
	"studeaf/models"
)

type ForumService interface {
	CreatePost(auth models.AuthContext, input models.ForumInput) (*models.Forum, error)
	GetPost(auth models.AuthContext, id int64) (*models.ForumView, error)
	ListPosts(auth models.AuthContext, filter models.ForumFilter) ([]models.ForumView, error)
	UpdatePost(auth models.AuthContext, id int64, input models.ForumInput) (*models.Forum, error)
	DeletePost(auth models.AuthContext, id int64) error

	AddComment(auth models.AuthContext, forumID int64, content string) (*models.ForumComment, error)
	ToggleLike(auth models.AuthContext, forumID int64) (bool, error)
}

// DefaultForumService is the production implementation.
type DefaultForumService struct {
	Repo     forumRepo.ForumRepository
	UserRepo userRepo.UserRepository
}
