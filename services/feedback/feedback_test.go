package feedback

import (
	"errors"
	"sort"
	"testing"

	feedbackRepo "studeaf/database/repository/feedback"
	"studeaf/models"
	"studeaf/utils"
)

type memFeedbackRepo struct {
	entries map[int64]*models.Feedback
	nextID  int64
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{entries: make(map[int64]*models.Feedback), nextID: 1}
}

func (r *memFeedbackRepo) Create(f *models.Feedback) error {
	for _, e := range r.entries {
		if e.UserID == f.UserID {
			return feedbackRepo.ErrDuplicate
		}
	}
	f.ID = r.nextID
	r.nextID++
	cp := *f
	r.entries[f.ID] = &cp
	return nil
}

func (r *memFeedbackRepo) GetByID(id int64) (*models.Feedback, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, feedbackRepo.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memFeedbackRepo) GetByUser(userID int64) (*models.Feedback, error) {
	for _, e := range r.entries {
		if e.UserID == userID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, feedbackRepo.ErrNotFound
}

func (r *memFeedbackRepo) List(offset, limit int64) ([]models.Feedback, int64, error) {
	var out []models.Feedback
	for _, e := range r.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	total := int64(len(out))
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (r *memFeedbackRepo) Update(id int64, rating int, description string) error {
	e, ok := r.entries[id]
	if !ok {
		return feedbackRepo.ErrNotFound
	}
	e.Rating = rating
	e.Description = description
	return nil
}

func (r *memFeedbackRepo) Delete(id int64) error {
	if _, ok := r.entries[id]; !ok {
		return feedbackRepo.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *memFeedbackRepo) DeleteByUser(userID int64) error {
	for id, e := range r.entries {
		if e.UserID == userID {
			delete(r.entries, id)
		}
	}
	return nil
}

func newTestService() (*DefaultFeedbackService, *memFeedbackRepo, *memFeedbackRepo) {
	system := newMemFeedbackRepo()
	dosen := newMemFeedbackRepo()
	return &DefaultFeedbackService{SystemRepo: system, DosenRepo: dosen}, system, dosen
}

var (
	userCtx  = models.AuthContext{UserID: 2, Role: models.RoleTuli}
	otherCtx = models.AuthContext{UserID: 4, Role: models.RoleDosen}
	adminCtx = models.AuthContext{UserID: 1, Role: models.RoleAdmin}
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

func TestSubmitOncePerLedger(t *testing.T) {
	svc, _, _ := newTestService()

	entry, err := svc.Submit(userCtx, LedgerSystem, models.FeedbackInput{Rating: 4, Description: "bagus"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if entry.ID == 0 || entry.UserID != userCtx.UserID {
		t.Fatalf("entry = %+v", entry)
	}

	_, err = svc.Submit(userCtx, LedgerSystem, models.FeedbackInput{Rating: 5})
	mustAPIError(t, err, "ALREADY_SUBMITTED", 409)

	// The ledgers are independent: the same user may still rate lecturers.
	if _, err := svc.Submit(userCtx, LedgerDosen, models.FeedbackInput{Rating: 5}); err != nil {
		t.Fatalf("Submit dosen: %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _ := newTestService()

	for _, rating := range []int{0, 6} {
		_, err := svc.Submit(userCtx, LedgerSystem, models.FeedbackInput{Rating: rating})
		mustAPIError(t, err, "INVALID_RATING", 400)
	}

	_, err := svc.Submit(userCtx, Ledger("campus"), models.FeedbackInput{Rating: 3})
	mustAPIError(t, err, "INVALID_LEDGER", 400)
}

func TestGetOwn(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetOwn(userCtx, LedgerSystem)
	mustAPIError(t, err, "FEEDBACK_NOT_FOUND", 404)

	if _, err := svc.Submit(userCtx, LedgerSystem, models.FeedbackInput{Rating: 3}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	entry, err := svc.GetOwn(userCtx, LedgerSystem)
	if err != nil {
		t.Fatalf("GetOwn: %v", err)
	}
	if entry.Rating != 3 {
		t.Fatalf("rating = %d", entry.Rating)
	}
}

func TestUpdateOwnerOrAdmin(t *testing.T) {
	svc, _, _ := newTestService()
	entry, err := svc.Submit(userCtx, LedgerSystem, models.FeedbackInput{Rating: 3})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err = svc.Update(otherCtx, LedgerSystem, entry.ID, models.FeedbackInput{Rating: 1})
	mustAPIError(t, err, "FORBIDDEN", 403)

	updated, err := svc.Update(userCtx, LedgerSystem, entry.ID, models.FeedbackInput{Rating: 5, Description: "makin bagus"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Rating != 5 || updated.Description != "makin bagus" {
		t.Fatalf("updated = %+v", updated)
	}

	if _, err := svc.Update(adminCtx, LedgerSystem, entry.ID, models.FeedbackInput{Rating: 4}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestDeleteOwnerOrAdmin(t *testing.T) {
	svc, system, _ := newTestService()
	entry, err := svc.Submit(userCtx, LedgerSystem, models.FeedbackInput{Rating: 3})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	err = svc.Delete(otherCtx, LedgerSystem, entry.ID)
	mustAPIError(t, err, "FORBIDDEN", 403)

	if err := svc.Delete(adminCtx, LedgerSystem, entry.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(system.entries) != 0 {
		t.Fatal("entry not removed")
	}

	err = svc.Delete(adminCtx, LedgerSystem, entry.ID)
	mustAPIError(t, err, "FEEDBACK_NOT_FOUND", 404)
}

func TestListAdminOnly(t *testing.T) {
	svc, _, _ := newTestService()
	for i, ctx := range []models.AuthContext{userCtx, otherCtx} {
		if _, err := svc.Submit(ctx, LedgerSystem, models.FeedbackInput{Rating: i + 3}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	_, _, err := svc.List(userCtx, LedgerSystem, 0, 10)
	mustAPIError(t, err, "FORBIDDEN", 403)

	entries, total, err := svc.List(adminCtx, LedgerSystem, 0, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(entries) != 1 {
		t.Fatalf("total=%d len=%d", total, len(entries))
	}
	// Newest first.
	if entries[0].UserID != otherCtx.UserID {
		t.Fatalf("first entry from user %d", entries[0].UserID)
	}
}
