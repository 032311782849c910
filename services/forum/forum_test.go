package forum

import (
	"errors"
	"sort"
	"strings"
	"testing"

	forumRepo "studeaf/database/repository/forum"
	userRepo "studeaf/database/repository/user"
	"studeaf/models"
	"studeaf/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type likeKey struct{ forumID, userID int64 }

type memForumRepo struct {
	posts      map[int64]*models.Forum
	comments   map[int64][]models.ForumComment
	likes      map[likeKey]struct{}
	nextID     int64
	nextCommID int64
}

func newMemForumRepo() *memForumRepo {
	return &memForumRepo{
		posts:      make(map[int64]*models.Forum),
		comments:   make(map[int64][]models.ForumComment),
		likes:      make(map[likeKey]struct{}),
		nextID:     1,
		nextCommID: 1,
	}
}

func (r *memForumRepo) Create(f *models.Forum) error {
	f.ID = r.nextID
	r.nextID++
	cp := *f
	r.posts[f.ID] = &cp
	return nil
}

func (r *memForumRepo) GetByID(id int64) (*models.Forum, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, forumRepo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memForumRepo) List(filter models.ForumFilter) ([]models.Forum, error) {
	var out []models.Forum
	for _, p := range r.posts {
		if filter.Topic != "" && p.Topic != filter.Topic {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memForumRepo) Update(f *models.Forum) error {
	if _, ok := r.posts[f.ID]; !ok {
		return forumRepo.ErrNotFound
	}
	cp := *f
	r.posts[f.ID] = &cp
	return nil
}

func (r *memForumRepo) Delete(id int64) error {
	if _, ok := r.posts[id]; !ok {
		return forumRepo.ErrNotFound
	}
	delete(r.posts, id)
	delete(r.comments, id)
	for k := range r.likes {
		if k.forumID == id {
			delete(r.likes, k)
		}
	}
	return nil
}

func (r *memForumRepo) DeleteByUser(userID int64) error {
	for id, p := range r.posts {
		if p.UserID == userID {
			_ = r.Delete(id)
		}
	}
	return nil
}

func (r *memForumRepo) CreateComment(c *models.ForumComment) error {
	c.ID = r.nextCommID
	r.nextCommID++
	r.comments[c.ForumID] = append(r.comments[c.ForumID], *c)
	return nil
}

func (r *memForumRepo) ListComments(forumID int64) ([]models.ForumComment, error) {
	return append([]models.ForumComment(nil), r.comments[forumID]...), nil
}

func (r *memForumRepo) CountComments(forumID int64) (int64, error) {
	return int64(len(r.comments[forumID])), nil
}

func (r *memForumRepo) ToggleLike(forumID, userID int64) (bool, error) {
	k := likeKey{forumID, userID}
	if _, ok := r.likes[k]; ok {
		delete(r.likes, k)
		return false, nil
	}
	r.likes[k] = struct{}{}
	return true, nil
}

func (r *memForumRepo) CountLikes(forumID int64) (int64, error) {
	var n int64
	for k := range r.likes {
		if k.forumID == forumID {
			n++
		}
	}
	return n, nil
}

func (r *memForumRepo) HasLiked(forumID, userID int64) (bool, error) {
	_, ok := r.likes[likeKey{forumID, userID}]
	return ok, nil
}

// nameUserRepo only resolves display names; the forum service needs nothing
// else from the user store.
type nameUserRepo struct{ names map[int64]string }

func (r *nameUserRepo) GetByID(id int64) (*models.User, error) { return nil, userRepo.ErrNotFound }
func (r *nameUserRepo) GetByEmail(email string) (*models.User, error) {
	return nil, userRepo.ErrNotFound
}
func (r *nameUserRepo) Create(u *models.User) error                  { return nil }
func (r *nameUserRepo) UpdateSetDocument(id int64, doc bson.M) error { return nil }
func (r *nameUserRepo) Delete(id int64) error                        { return nil }
func (r *nameUserRepo) IncrementPoints(id int64, delta int) error    { return nil }
func (r *nameUserRepo) GetNamesByIDs(ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		if n, ok := r.names[id]; ok {
			names[id] = n
		}
	}
	return names, nil
}

func newTestService() (*DefaultForumService, *memForumRepo) {
	repo := newMemForumRepo()
	svc := &DefaultForumService{
		Repo:     repo,
		UserRepo: &nameUserRepo{names: map[int64]string{2: "Dina Putri", 4: "Bagus"}},
	}
	return svc, repo
}

var (
	authorCtx = models.AuthContext{UserID: 2, Role: models.RoleTuli}
	readerCtx = models.AuthContext{UserID: 4, Role: models.RoleDosen}
	adminCtx  = models.AuthContext{UserID: 1, Role: models.RoleAdmin}
)

func mustAPIError(t *testing.T, err error, code string, status int) {
	t.Helper()
	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != code || apiErr.Status != status {
		t.Fatalf("got %s/%d, want %s/%d", apiErr.Code, apiErr.Status, code, status)
	}
}

func post(t *testing.T, svc *DefaultForumService) *models.Forum {
	t.Helper()
	p, err := svc.CreatePost(authorCtx, models.ForumInput{
		Title: "Belajar BISINDO",
		Topic: "edukasi",
		Body:  "Sumber belajar bahasa isyarat untuk pemula.",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	return p
}

func TestCreatePostValidation(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreatePost(authorCtx, models.ForumInput{Title: "x"})
	mustAPIError(t, err, "VALIDATION_ERROR", 400)
}

func TestGetPostView(t *testing.T) {
	svc, _ := newTestService()
	p := post(t, svc)

	if _, err := svc.AddComment(readerCtx, p.ID, "Terima kasih!"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if _, err := svc.ToggleLike(readerCtx, p.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	view, err := svc.GetPost(readerCtx, p.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if view.UserName != "Dina Putri" {
		t.Fatalf("author name = %q", view.UserName)
	}
	if view.LikeCount != 1 || view.CommentCount != 1 {
		t.Fatalf("counters = %d likes, %d comments", view.LikeCount, view.CommentCount)
	}
	if !view.HasLiked {
		t.Fatal("caller's like state missing")
	}
	if len(view.Comments) != 1 || view.Comments[0].UserName != "Bagus" {
		t.Fatalf("comments = %+v", view.Comments)
	}

	// A different caller sees the same counters but their own like state.
	other, err := svc.GetPost(authorCtx, p.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if other.HasLiked {
		t.Fatal("author has not liked the post")
	}
}

func TestToggleLikeFlips(t *testing.T) {
	svc, _ := newTestService()
	p := post(t, svc)

	liked, err := svc.ToggleLike(readerCtx, p.ID)
	if err != nil || !liked {
		t.Fatalf("first toggle = %v, %v", liked, err)
	}
	liked, err = svc.ToggleLike(readerCtx, p.ID)
	if err != nil || liked {
		t.Fatalf("second toggle = %v, %v", liked, err)
	}
	liked, err = svc.ToggleLike(readerCtx, p.ID)
	if err != nil || !liked {
		t.Fatalf("third toggle = %v, %v", liked, err)
	}
}

func TestListPostsFilter(t *testing.T) {
	svc, _ := newTestService()
	post(t, svc)
	if _, err := svc.CreatePost(readerCtx, models.ForumInput{
		Title: "Lowongan JBI",
		Topic: "karir",
		Body:  "Dibutuhkan juru bahasa isyarat.",
	}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	all, err := svc.ListPosts(readerCtx, models.ForumFilter{})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d", len(all))
	}
	// Newest first.
	if all[0].Title != "Lowongan JBI" {
		t.Fatalf("order: first = %q", all[0].Title)
	}

	filtered, err := svc.ListPosts(readerCtx, models.ForumFilter{Topic: "edukasi"})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Topic != "edukasi" {
		t.Fatalf("filtered = %+v", filtered)
	}

	searched, err := svc.ListPosts(readerCtx, models.ForumFilter{Search: "lowongan"})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(searched) != 1 || searched[0].Title != "Lowongan JBI" {
		t.Fatalf("searched = %+v", searched)
	}
}

func TestUpdatePostOwnerOnly(t *testing.T) {
	svc, _ := newTestService()
	p := post(t, svc)

	input := models.ForumInput{Title: "Diedit", Topic: "edukasi", Body: "baru"}
	_, err := svc.UpdatePost(readerCtx, p.ID, input)
	mustAPIError(t, err, "FORBIDDEN", 403)
	// Admins cannot edit either; editing is author-only.
	_, err = svc.UpdatePost(adminCtx, p.ID, input)
	mustAPIError(t, err, "FORBIDDEN", 403)

	updated, err := svc.UpdatePost(authorCtx, p.ID, input)
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated.Title != "Diedit" {
		t.Fatalf("title = %q", updated.Title)
	}
}

func TestDeletePostOwnerOrAdmin(t *testing.T) {
	svc, repo := newTestService()
	p := post(t, svc)

	err := svc.DeletePost(readerCtx, p.ID)
	mustAPIError(t, err, "FORBIDDEN", 403)

	if err := svc.DeletePost(adminCtx, p.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatal("post not removed")
	}

	err = svc.DeletePost(adminCtx, p.ID)
	mustAPIError(t, err, "FORUM_NOT_FOUND", 404)
}

func TestAddCommentValidation(t *testing.T) {
	svc, _ := newTestService()
	p := post(t, svc)

	_, err := svc.AddComment(readerCtx, p.ID, "")
	mustAPIError(t, err, "VALIDATION_ERROR", 400)

	_, err = svc.AddComment(readerCtx, 99, "halo")
	mustAPIError(t, err, "FORUM_NOT_FOUND", 404)
}
