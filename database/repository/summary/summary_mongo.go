package summaryRepo

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

// ErrNotFound is returned when no summary matches the lookup.
var ErrNotFound = errors.New("summary not found")

// MongoSummaryRepo implements SummaryRepository using MongoDB.
type MongoSummaryRepo struct {
	summaries *mongo.Collection
	comments  *mongo.Collection
	reactions *mongo.Collection
}

// NewMongoSummaryRepo creates a new instance of SummaryRepository using MongoDB.
func NewMongoSummaryRepo() SummaryRepository {
	repo := &MongoSummaryRepo{
		summaries: database.Collection("summaries"),
		comments:  database.Collection("summary_comments"),
		reactions: database.Collection("summary_reactions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSummaryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.summaries.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_published", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create summary indexes: %w", err)
	}
	if _, err := r.comments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "summary_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}
	if _, err := r.reactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "summary_id", Value: 1}, {Key: "kind", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create reaction index: %w", err)
	}
	return nil
}

// Create inserts a new summary draft, assigning its id.
func (r *MongoSummaryRepo) Create(summary *models.Summary) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("summaries")
	if err != nil {
		return err
	}
	now := time.Now()
	summary.ID = id
	summary.CreatedAt = now
	summary.UpdatedAt = now

	if _, err := r.summaries.InsertOne(ctx, summary); err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	return nil
}

// GetByID retrieves a summary by its unique ID.
func (r *MongoSummaryRepo) GetByID(id int64) (*models.Summary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var summary models.Summary
	if err := r.summaries.FindOne(ctx, bson.M{"id": id}).Decode(&summary); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch summary with id %d: %w", id, err)
	}
	return &summary, nil
}

// ListVisible returns the user's own summaries and, when includePublished is
// set, everyone else's published ones, newest first.
func (r *MongoSummaryRepo) ListVisible(userID int64, includePublished bool) ([]models.Summary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if includePublished {
		filter = bson.M{"$or": []bson.M{
			{"user_id": userID},
			{"is_published": true},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.summaries.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.Summary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}
	return summaries, nil
}

// UpdateContent replaces a draft's content.
func (r *MongoSummaryRepo) UpdateContent(id int64, content string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now()}}
	result, err := r.summaries.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update summary with id %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Publish marks a summary published and attaches its metadata.
func (r *MongoSummaryRepo) Publish(id int64, meta models.SummaryPublish) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"is_published": true,
		"title":        meta.Title,
		"subtitle":     meta.Subtitle,
		"topic":        meta.Topic,
		"image_url":    meta.ImageURL,
		"updated_at":   time.Now(),
	}}
	result, err := r.summaries.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to publish summary with id %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a summary together with its comments and reactions.
func (r *MongoSummaryRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.summaries.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete summary with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	if _, err := r.comments.DeleteMany(ctx, bson.M{"summary_id": id}); err != nil {
		return fmt.Errorf("failed to delete comments for summary %d: %w", id, err)
	}
	if _, err := r.reactions.DeleteMany(ctx, bson.M{"summary_id": id}); err != nil {
		return fmt.Errorf("failed to delete reactions for summary %d: %w", id, err)
	}
	return nil
}

// DeleteByUser removes all of a user's summaries with their comments and reactions.
func (r *MongoSummaryRepo) DeleteByUser(userID int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.summaries.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return fmt.Errorf("failed to collect summaries for user %d: %w", userID, err)
	}
	var ids []int64
	for cursor.Next(ctx) {
		var doc struct {
			ID int64 `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("failed to decode summary id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	cursor.Close(ctx)

	if len(ids) == 0 {
		return nil
	}
	if _, err := r.summaries.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("failed to delete summaries for user %d: %w", userID, err)
	}
	if _, err := r.comments.DeleteMany(ctx, bson.M{"summary_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("failed to delete comments for user %d's summaries: %w", userID, err)
	}
	if _, err := r.reactions.DeleteMany(ctx, bson.M{"summary_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("failed to delete reactions for user %d's summaries: %w", userID, err)
	}
	return nil
}

// CreateComment inserts a comment on a summary, assigning its id.
func (r *MongoSummaryRepo) CreateComment(comment *models.SummaryComment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("summary_comments")
	if err != nil {
		return err
	}
	now := time.Now()
	comment.ID = id
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListComments returns a summary's comments in insertion order.
func (r *MongoSummaryRepo) ListComments(summaryID int64) ([]models.SummaryComment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"summary_id": summaryID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []models.SummaryComment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// CountComments counts a summary's comments.
func (r *MongoSummaryRepo) CountComments(summaryID int64) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.comments.CountDocuments(ctx, bson.M{"summary_id": summaryID})
}

// ToggleReaction flips a user's like or bookmark; reports the resulting state.
func (r *MongoSummaryRepo) ToggleReaction(summaryID, userID int64, kind string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"summary_id": summaryID, "user_id": userID, "kind": kind}
	result, err := r.reactions.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to toggle %s: %w", kind, err)
	}
	if result.DeletedCount > 0 {
		return false, nil
	}

	reaction := models.SummaryReaction{
		UserID:    userID,
		SummaryID: summaryID,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if _, err := r.reactions.InsertOne(ctx, reaction); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to record %s: %w", kind, err)
	}
	return true, nil
}

// CountReactions counts a summary's reactions of the given kind.
func (r *MongoSummaryRepo) CountReactions(summaryID int64, kind string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.reactions.CountDocuments(ctx, bson.M{"summary_id": summaryID, "kind": kind})
}

// HasReacted reports whether a user holds a reaction of the given kind.
func (r *MongoSummaryRepo) HasReacted(summaryID, userID int64, kind string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.reactions.CountDocuments(ctx,
		bson.M{"summary_id": summaryID, "user_id": userID, "kind": kind})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
