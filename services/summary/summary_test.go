package summary

import (
	"errors"
	"sort"
	"testing"

	summaryRepo "studeaf/database/repository/summary"
	userRepo "studeaf/database/repository/user"
	"studeaf/models"
	"studeaf/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type reactionKey struct {
	summaryID, userID int64
	kind              string
}

type memSummaryRepo struct {
	summaries  map[int64]*models.Summary
	comments   map[int64][]models.SummaryComment
	reactions  map[reactionKey]struct{}
	nextID     int64
	nextCommID int64
}

func newMemSummaryRepo() *memSummaryRepo {
	return &memSummaryRepo{
		summaries:  make(map[int64]*models.Summary),
		comments:   make(map[int64][]models.SummaryComment),
		reactions:  make(map[reactionKey]struct{}),
		nextID:     1,
		nextCommID: 1,
	}
}

func (r *memSummaryRepo) Create(s *models.Summary) error {
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.summaries[s.ID] = &cp
	return nil
}

func (r *memSummaryRepo) GetByID(id int64) (*models.Summary, error) {
	s, ok := r.summaries[id]
	if !ok {
		return nil, summaryRepo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSummaryRepo) ListVisible(userID int64, includePublished bool) ([]models.Summary, error) {
	var out []models.Summary
	for _, s := range r.summaries {
		if s.UserID == userID || (includePublished && s.IsPublished) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memSummaryRepo) UpdateContent(id int64, content string) error {
	s, ok := r.summaries[id]
	if !ok {
		return summaryRepo.ErrNotFound
	}
	s.Content = content
	return nil
}

func (r *memSummaryRepo) Publish(id int64, meta models.SummaryPublish) error {
	s, ok := r.summaries[id]
	if !ok {
		return summaryRepo.ErrNotFound
	}
	s.IsPublished = true
	s.Title = meta.Title
	s.Subtitle = meta.Subtitle
	s.Topic = meta.Topic
	s.ImageURL = meta.ImageURL
	return nil
}

func (r *memSummaryRepo) Delete(id int64) error {
	if _, ok := r.summaries[id]; !ok {
		return summaryRepo.ErrNotFound
	}
	delete(r.summaries, id)
	delete(r.comments, id)
	for k := range r.reactions {
		if k.summaryID == id {
			delete(r.reactions, k)
		}
	}
	return nil
}

func (r *memSummaryRepo) DeleteByUser(userID int64) error {
	for id, s := range r.summaries {
		if s.UserID == userID {
			_ = r.Delete(id)
		}
	}
	return nil
}

func (r *memSummaryRepo) CreateComment(c *models.SummaryComment) error {
	c.ID = r.nextCommID
	r.nextCommID++
	r.comments[c.SummaryID] = append(r.comments[c.SummaryID], *c)
	return nil
}

func (r *memSummaryRepo) ListComments(summaryID int64) ([]models.SummaryComment, error) {
	return append([]models.SummaryComment(nil), r.comments[summaryID]...), nil
}

func (r *memSummaryRepo) CountComments(summaryID int64) (int64, error) {
	return int64(len(r.comments[summaryID])), nil
}

func (r *memSummaryRepo) ToggleReaction(summaryID, userID int64, kind string) (bool, error) {
	k := reactionKey{summaryID, userID, kind}
	if _, ok := r.reactions[k]; ok {
		delete(r.reactions, k)
		return false, nil
	}
	r.reactions[k] = struct{}{}
	return true, nil
}

func (r *memSummaryRepo) CountReactions(summaryID int64, kind string) (int64, error) {
	var n int64
	for k := range r.reactions {
		if k.summaryID == summaryID && k.kind == kind {
			n++
		}
	}
	return n, nil
}

func (r *memSummaryRepo) HasReacted(summaryID, userID int64, kind string) (bool, error) {
	_, ok := r.reactions[reactionKey{summaryID, userID, kind}]
	return ok, nil
}

// pointsUserRepo resolves names and tracks point credits.
type pointsUserRepo struct {
	names  map[int64]string
	points map[int64]int
}

func (r *pointsUserRepo) GetByID(id int64) (*models.User, error) { return nil, userRepo.ErrNotFound }
func (r *pointsUserRepo) GetByEmail(email string) (*models.User, error) {
	return nil, userRepo.ErrNotFound
}
func (r *pointsUserRepo) Create(u *models.User) error                  { return nil }
func (r *pointsUserRepo) UpdateSetDocument(id int64, doc bson.M) error { return nil }
func (r *pointsUserRepo) Delete(id int64) error                        { return nil }
func (r *pointsUserRepo) IncrementPoints(id int64, delta int) error {
	r.points[id] += delta
	return nil
}
func (r *pointsUserRepo) GetNamesByIDs(ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		if n, ok := r.names[id]; ok {
			names[id] = n
		}
	}
	return names, nil
}

func newTestService() (*DefaultSummaryService, *memSummaryRepo, *pointsUserRepo) {
	repo := newMemSummaryRepo()
	users := &pointsUserRepo{
		names:  map[int64]string{2: "Dina Putri", 4: "Bagus"},
		points: make(map[int64]int),
	}
	return &DefaultSummaryService{Repo: repo, UserRepo: users}, repo, users
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

func draft(t *testing.T, svc *DefaultSummaryService) *models.Summary {
	t.Helper()
	d, err := svc.CreateDraft(authorCtx, "Catatan kuliah algoritma, pertemuan 3.")
	if err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	return d
}

func publish(t *testing.T, svc *DefaultSummaryService, id int64) {
	t.Helper()
	if _, err := svc.Publish(authorCtx, id, models.SummaryPublish{
		Title: "Catatan Algoritma",
		Topic: "informatika",
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestDraftVisibleToOwnerOnly(t *testing.T) {
	svc, _, _ := newTestService()
	d := draft(t, svc)

	if _, err := svc.GetSummary(authorCtx, d.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	_, err := svc.GetSummary(readerCtx, d.ID)
	mustAPIError(t, err, "FORBIDDEN", 403)

	publish(t, svc, d.ID)
	if _, err := svc.GetSummary(readerCtx, d.ID); err != nil {
		t.Fatalf("published read: %v", err)
	}
}

func TestPublishOnceAndReward(t *testing.T) {
	svc, _, users := newTestService()
	d := draft(t, svc)

	// Title and topic are mandatory.
	_, err := svc.Publish(authorCtx, d.ID, models.SummaryPublish{Title: "x"})
	mustAPIError(t, err, "VALIDATION_ERROR", 400)

	// Only the author may publish.
	_, err = svc.Publish(readerCtx, d.ID, models.SummaryPublish{Title: "x", Topic: "y"})
	mustAPIError(t, err, "FORBIDDEN", 403)

	publish(t, svc, d.ID)
	if users.points[authorCtx.UserID] != 10 {
		t.Fatalf("points = %d, want 10", users.points[authorCtx.UserID])
	}

	// Publishing is one-shot; a second attempt must not credit again.
	_, err = svc.Publish(authorCtx, d.ID, models.SummaryPublish{Title: "x", Topic: "y"})
	mustAPIError(t, err, "ALREADY_PUBLISHED", 409)
	if users.points[authorCtx.UserID] != 10 {
		t.Fatalf("points = %d after retry, want 10", users.points[authorCtx.UserID])
	}
}

func TestUpdateDraftRules(t *testing.T) {
	svc, _, _ := newTestService()
	d := draft(t, svc)

	_, err := svc.UpdateDraft(readerCtx, d.ID, "diedit")
	mustAPIError(t, err, "FORBIDDEN", 403)

	updated, err := svc.UpdateDraft(authorCtx, d.ID, "Catatan diperbarui.")
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}
	if updated.Content != "Catatan diperbarui." {
		t.Fatalf("content = %q", updated.Content)
	}

	publish(t, svc, d.ID)
	_, err = svc.UpdateDraft(authorCtx, d.ID, "terlambat")
	mustAPIError(t, err, "ALREADY_PUBLISHED", 409)
}

func TestListSummariesVisibility(t *testing.T) {
	svc, _, _ := newTestService()
	mine := draft(t, svc)
	publishedID := draft(t, svc).ID
	publish(t, svc, publishedID)

	// The author sees both of their summaries.
	own, err := svc.ListSummaries(authorCtx)
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("author sees %d", len(own))
	}

	// A reader sees only the published one.
	visible, err := svc.ListSummaries(readerCtx)
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != publishedID {
		t.Fatalf("reader sees %+v", visible)
	}
	_ = mine
}

func TestSocialRequiresPublication(t *testing.T) {
	svc, _, _ := newTestService()
	d := draft(t, svc)

	_, err := svc.AddComment(readerCtx, d.ID, "mantap")
	mustAPIError(t, err, "NOT_PUBLISHED", 409)
	_, err = svc.ToggleLike(authorCtx, d.ID)
	mustAPIError(t, err, "NOT_PUBLISHED", 409)

	publish(t, svc, d.ID)

	if _, err := svc.AddComment(readerCtx, d.ID, "mantap"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	liked, err := svc.ToggleLike(readerCtx, d.ID)
	if err != nil || !liked {
		t.Fatalf("ToggleLike = %v, %v", liked, err)
	}
	marked, err := svc.ToggleBookmark(readerCtx, d.ID)
	if err != nil || !marked {
		t.Fatalf("ToggleBookmark = %v, %v", marked, err)
	}

	view, err := svc.GetSummary(readerCtx, d.ID)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if view.LikeCount != 1 || view.BookmarkCount != 1 || view.CommentCount != 1 {
		t.Fatalf("counters = %d/%d/%d", view.LikeCount, view.BookmarkCount, view.CommentCount)
	}
	if !view.HasLiked || !view.HasBookmarked {
		t.Fatal("caller reaction state missing")
	}

	// Like and bookmark toggle independently.
	if liked, _ = svc.ToggleLike(readerCtx, d.ID); liked {
		t.Fatal("second like toggle should clear")
	}
	if marked, _ = svc.ToggleBookmark(readerCtx, d.ID); marked {
		t.Fatal("second bookmark toggle should clear")
	}
}

func TestDeleteSummaryOwnerOrAdmin(t *testing.T) {
	svc, repo, _ := newTestService()
	d := draft(t, svc)

	err := svc.DeleteSummary(readerCtx, d.ID)
	mustAPIError(t, err, "FORBIDDEN", 403)

	if err := svc.DeleteSummary(adminCtx, d.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(repo.summaries) != 0 {
		t.Fatal("summary not removed")
	}

	err = svc.DeleteSummary(adminCtx, d.ID)
	mustAPIError(t, err, "SUMMARY_NOT_FOUND", 404)
}
