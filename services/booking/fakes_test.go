package booking

import (
	"sort"
	"time"

	orderRepo "studeaf/database/repository/order"
	reviewRepo "studeaf/database/repository/review"
	translatorRepo "studeaf/database/repository/translator"
	"studeaf/models"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory repository fakes. Single-goroutine tests, no locking needed.

type memTranslatorRepo struct {
	nextID      int64
	translators map[int64]*models.Translator
}

func newMemTranslatorRepo() *memTranslatorRepo {
	return &memTranslatorRepo{translators: map[int64]*models.Translator{}}
}

func (r *memTranslatorRepo) Create(t *models.Translator) error {
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.translators[t.ID] = &cp
	return nil
}

func (r *memTranslatorRepo) GetByID(id int64) (*models.Translator, error) {
	t, ok := r.translators[id]
	if !ok {
		return nil, translatorRepo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTranslatorRepo) GetByUserID(userID int64) (*models.Translator, error) {
	for _, t := range r.translators {
		if t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, translatorRepo.ErrNotFound
}

func (r *memTranslatorRepo) List(offset, limit int64) ([]models.Translator, int64, error) {
	ids := make([]int64, 0, len(r.translators))
	for id := range r.translators {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var page []models.Translator
	for i, id := range ids {
		if int64(i) < offset || int64(len(page)) >= limit {
			continue
		}
		page = append(page, *r.translators[id])
	}
	return page, int64(len(ids)), nil
}

func (r *memTranslatorRepo) Update(t *models.Translator) error {
	if _, ok := r.translators[t.ID]; !ok {
		return translatorRepo.ErrNotFound
	}
	cp := *t
	r.translators[t.ID] = &cp
	return nil
}

func (r *memTranslatorRepo) Delete(id int64) error {
	if _, ok := r.translators[id]; !ok {
		return translatorRepo.ErrNotFound
	}
	delete(r.translators, id)
	return nil
}

type memOrderRepo struct {
	nextID int64
	orders map[int64]*models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[int64]*models.Order{}}
}

func (r *memOrderRepo) Create(o *models.Order) error {
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(id int64) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, orderRepo.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) listBy(match func(*models.Order) bool, offset, limit int64) ([]models.Order, int64, error) {
	ids := make([]int64, 0, len(r.orders))
	for id, o := range r.orders {
		if match(o) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var page []models.Order
	for i, id := range ids {
		if int64(i) < offset || int64(len(page)) >= limit {
			continue
		}
		page = append(page, *r.orders[id])
	}
	return page, int64(len(ids)), nil
}

func (r *memOrderRepo) ListByUser(userID, offset, limit int64) ([]models.Order, int64, error) {
	return r.listBy(func(o *models.Order) bool { return o.UserID == userID }, offset, limit)
}

func (r *memOrderRepo) ListByTranslator(translatorID, offset, limit int64) ([]models.Order, int64, error) {
	return r.listBy(func(o *models.Order) bool { return o.TranslatorID == translatorID }, offset, limit)
}

func (r *memOrderRepo) UpdateStatus(id int64, status models.OrderStatus) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, orderRepo.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) CountActiveByTranslator(translatorID int64) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.TranslatorID == translatorID &&
			(o.Status == models.OrderPending || o.Status == models.OrderConfirmed) {
			n++
		}
	}
	return n, nil
}

func (r *memOrderRepo) deleteBy(match func(*models.Order) bool) ([]int64, error) {
	var ids []int64
	for id, o := range r.orders {
		if match(o) {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		delete(r.orders, id)
	}
	return ids, nil
}

func (r *memOrderRepo) DeleteByTranslator(translatorID int64) ([]int64, error) {
	return r.deleteBy(func(o *models.Order) bool { return o.TranslatorID == translatorID })
}

func (r *memOrderRepo) DeleteByUser(userID int64) ([]int64, error) {
	return r.deleteBy(func(o *models.Order) bool { return o.UserID == userID })
}

type memReviewRepo struct {
	nextID  int64
	reviews map[int64]*models.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: map[int64]*models.Review{}}
}

func (r *memReviewRepo) Create(rev *models.Review) error {
	for _, existing := range r.reviews {
		if existing.OrderID == rev.OrderID {
			return reviewRepo.ErrDuplicate
		}
	}
	r.nextID++
	rev.ID = r.nextID
	rev.CreatedAt = time.Now()
	rev.UpdatedAt = rev.CreatedAt
	cp := *rev
	r.reviews[rev.ID] = &cp
	return nil
}

func (r *memReviewRepo) GetByID(id int64) (*models.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, reviewRepo.ErrNotFound
	}
	cp := *rev
	return &cp, nil
}

func (r *memReviewRepo) GetByOrderID(orderID int64) (*models.Review, error) {
	for _, rev := range r.reviews {
		if rev.OrderID == orderID {
			cp := *rev
			return &cp, nil
		}
	}
	return nil, reviewRepo.ErrNotFound
}

func (r *memReviewRepo) ListByTranslator(translatorID, offset, limit int64) ([]models.Review, int64, error) {
	var all []models.Review
	for _, rev := range r.reviews {
		if rev.TranslatorID == translatorID {
			all = append(all, *rev)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	var page []models.Review
	for i, rev := range all {
		if int64(i) < offset || int64(len(page)) >= limit {
			continue
		}
		page = append(page, rev)
	}
	return page, int64(len(all)), nil
}

func (r *memReviewRepo) Update(rev *models.Review) error {
	if _, ok := r.reviews[rev.ID]; !ok {
		return reviewRepo.ErrNotFound
	}
	cp := *rev
	r.reviews[rev.ID] = &cp
	return nil
}

func (r *memReviewRepo) Delete(id int64) error {
	if _, ok := r.reviews[id]; !ok {
		return reviewRepo.ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *memReviewRepo) DeleteByTranslator(translatorID int64) error {
	for id, rev := range r.reviews {
		if rev.TranslatorID == translatorID {
			delete(r.reviews, id)
		}
	}
	return nil
}

func (r *memReviewRepo) DeleteByOrders(orderIDs []int64) error {
	for _, orderID := range orderIDs {
		for id, rev := range r.reviews {
			if rev.OrderID == orderID {
				delete(r.reviews, id)
			}
		}
	}
	return nil
}

type memUserRepo struct {
	names map[int64]string
}

func (r *memUserRepo) GetByID(id int64) (*models.User, error) { return nil, nil }
func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	return nil, nil
}
func (r *memUserRepo) Create(u *models.User) error                        { return nil }
func (r *memUserRepo) UpdateSetDocument(id int64, updateDoc bson.M) error { return nil }
func (r *memUserRepo) Delete(id int64) error                              { return nil }
func (r *memUserRepo) IncrementPoints(id int64, delta int) error          { return nil }
func (r *memUserRepo) GetNamesByIDs(ids []int64) (map[int64]string, error) {
	out := map[int64]string{}
	for _, id := range ids {
		if name, ok := r.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func newTestService() (*DefaultBookingService, *memTranslatorRepo, *memOrderRepo, *memReviewRepo) {
	tr := newMemTranslatorRepo()
	or := newMemOrderRepo()
	rr := newMemReviewRepo()
	svc := &DefaultBookingService{
		TranslatorRepo: tr,
		OrderRepo:      or,
		ReviewRepo:     rr,
		UserRepo:       &memUserRepo{names: map[int64]string{}},
	}
	return svc, tr, or, rr
}
