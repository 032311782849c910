package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studeaf/database"
	"studeaf/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no order matches the lookup.
var ErrNotFound = errors.New("order not found")

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	repo := &MongoOrderRepo{coll: database.Collection("translation_orders")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. There
// is deliberately no unique index on (translator_id, date, time_slot):
// availability is an explicit flag on the translator, not derived from slot
// occupancy, so overlapping orders are legal.
func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "translator_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new order document, assigning its id.
func (r *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("translation_orders")
	if err != nil {
		return err
	}
	now := time.Now()
	order.ID = id
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its unique ID.
func (r *MongoOrderRepo) GetByID(id int64) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch order with id %d: %w", id, err)
	}
	return &order, nil
}

func (r *MongoOrderRepo) listByFilter(filter bson.M, offset, limit int64) ([]models.Order, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, total, nil
}

// ListByUser returns a page of a user's orders plus the total count.
func (r *MongoOrderRepo) ListByUser(userID, offset, limit int64) ([]models.Order, int64, error) {
	return r.listByFilter(bson.M{"user_id": userID}, offset, limit)
}

// ListByTranslator returns a page of orders placed on a translator plus the total count.
func (r *MongoOrderRepo) ListByTranslator(translatorID, offset, limit int64) ([]models.Order, int64, error) {
	return r.listByFilter(bson.M{"translator_id": translatorID}, offset, limit)
}

// UpdateStatus persists a status change on an order.
func (r *MongoOrderRepo) UpdateStatus(id int64, status models.OrderStatus) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	var order models.Order
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status of order %d: %w", id, err)
	}
	return &order, nil
}

// CountActiveByTranslator counts a translator's pending and confirmed orders.
func (r *MongoOrderRepo) CountActiveByTranslator(translatorID int64) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"translator_id": translatorID,
		"status":        bson.M{"$in": []models.OrderStatus{models.OrderPending, models.OrderConfirmed}},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count active orders for translator %d: %w", translatorID, err)
	}
	return count, nil
}

func (r *MongoOrderRepo) deleteByFilter(filter bson.M) ([]int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to collect orders: %w", err)
	}

	var ids []int64
	for cursor.Next(ctx) {
		var doc struct {
			ID int64 `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			cursor.Close(ctx)
			return nil, fmt.Errorf("failed to decode order id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	cursor.Close(ctx)

	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return nil, fmt.Errorf("failed to delete orders: %w", err)
	}
	return ids, nil
}

// DeleteByTranslator removes all orders referencing a translator and returns
// their ids so dependent records can be cascaded.
func (r *MongoOrderRepo) DeleteByTranslator(translatorID int64) ([]int64, error) {
	return r.deleteByFilter(bson.M{"translator_id": translatorID})
}

// DeleteByUser removes all orders placed by a user and returns their ids so
// dependent records can be cascaded.
func (r *MongoOrderRepo) DeleteByUser(userID int64) ([]int64, error) {
	return r.deleteByFilter(bson.M{"user_id": userID})
}
