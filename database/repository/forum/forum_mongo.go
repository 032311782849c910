package forumRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studeaf/database"
	"studeaf/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no forum post matches the lookup.
var ErrNotFound = errors.New("forum not found")

// MongoForumRepo implements ForumRepository using MongoDB.
type MongoForumRepo struct {
	posts    *mongo.Collection
	comments *mongo.Collection
	likes    *mongo.Collection
}

// NewMongoForumRepo creates a new instance of ForumRepository using MongoDB.
func NewMongoForumRepo() ForumRepository {
	repo := &MongoForumRepo{
		posts:    database.Collection("forums"),
		comments: database.Collection("forum_comments"),
		likes:    database.Collection("forum_likes"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes; the (user_id, forum_id) pair on likes is
// unique so a user can hold at most one like per post.
func (r *MongoForumRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "topic", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create forum indexes: %w", err)
	}
	if _, err := r.comments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "forum_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}
	if _, err := r.likes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "forum_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create like index: %w", err)
	}
	return nil
}

// Create inserts a new forum post, assigning its id.
func (r *MongoForumRepo) Create(forum *models.Forum) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("forums")
	if err != nil {
		return err
	}
	now := time.Now()
	forum.ID = id
	forum.CreatedAt = now
	forum.UpdatedAt = now

	if _, err := r.posts.InsertOne(ctx, forum); err != nil {
		return fmt.Errorf("failed to create forum: %w", err)
	}
	return nil
}

// GetByID retrieves a forum post by its unique ID.
func (r *MongoForumRepo) GetByID(id int64) (*models.Forum, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var forum models.Forum
	if err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(&forum); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch forum with id %d: %w", id, err)
	}
	return &forum, nil
}

// List returns forum posts matching the filter, newest first. Search matches
// title, subtitle and body case-insensitively.
func (r *MongoForumRepo) List(filter models.ForumFilter) ([]models.Forum, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Topic != "" {
		query["topic"] = filter.Topic
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"title": regex},
			{"subtitle": regex},
			{"body": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.posts.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list forums: %w", err)
	}
	defer cursor.Close(ctx)

	var forums []models.Forum
	if err := cursor.All(ctx, &forums); err != nil {
		return nil, fmt.Errorf("failed to decode forums: %w", err)
	}
	return forums, nil
}

// Update patches a forum post's editable fields.
func (r *MongoForumRepo) Update(forum *models.Forum) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	forum.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":      forum.Title,
		"subtitle":   forum.Subtitle,
		"topic":      forum.Topic,
		"body":       forum.Body,
		"image_url":  forum.ImageURL,
		"updated_at": forum.UpdatedAt,
	}}
	result, err := r.posts.UpdateOne(ctx, bson.M{"id": forum.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update forum with id %d: %w", forum.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a forum post together with its comments and likes.
func (r *MongoForumRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete forum with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	if _, err := r.comments.DeleteMany(ctx, bson.M{"forum_id": id}); err != nil {
		return fmt.Errorf("failed to delete comments for forum %d: %w", id, err)
	}
	if _, err := r.likes.DeleteMany(ctx, bson.M{"forum_id": id}); err != nil {
		return fmt.Errorf("failed to delete likes for forum %d: %w", id, err)
	}
	return nil
}

// DeleteByUser removes all of a user's posts with their comments and likes.
func (r *MongoForumRepo) DeleteByUser(userID int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.posts.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return fmt.Errorf("failed to collect forums for user %d: %w", userID, err)
	}
	var ids []int64
	for cursor.Next(ctx) {
		var doc struct {
			ID int64 `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("failed to decode forum id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	cursor.Close(ctx)

	if len(ids) == 0 {
		return nil
	}
	if _, err := r.posts.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("failed to delete forums for user %d: %w", userID, err)
	}
	if _, err := r.comments.DeleteMany(ctx, bson.M{"forum_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("failed to delete comments for user %d's forums: %w", userID, err)
	}
	if _, err := r.likes.DeleteMany(ctx, bson.M{"forum_id": bson.M{"$in": ids}}); err != nil {
		return fmt.Errorf("failed to delete likes for user %d's forums: %w", userID, err)
	}
	return nil
}

// CreateComment inserts a comment on a forum post, assigning its id.
func (r *MongoForumRepo) CreateComment(comment *models.ForumComment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("forum_comments")
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

// ListComments returns a forum post's comments in insertion order.
func (r *MongoForumRepo) ListComments(forumID int64) ([]models.ForumComment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"forum_id": forumID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []models.ForumComment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// CountComments counts a forum post's comments.
func (r *MongoForumRepo) CountComments(forumID int64) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.comments.CountDocuments(ctx, bson.M{"forum_id": forumID})
}

// ToggleLike flips a user's like on a post; reports the resulting state.
func (r *MongoForumRepo) ToggleLike(forumID, userID int64) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"forum_id": forumID, "user_id": userID}
	result, err := r.likes.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	if result.DeletedCount > 0 {
		return false, nil
	}

	like := models.ForumLike{UserID: userID, ForumID: forumID, CreatedAt: time.Now()}
	if _, err := r.likes.InsertOne(ctx, like); err != nil {
		// A concurrent like between delete and insert trips the unique
		// index; the like exists either way.
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to record like: %w", err)
	}
	return true, nil
}

// CountLikes counts a forum post's likes.
func (r *MongoForumRepo) CountLikes(forumID int64) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	return r.likes.CountDocuments(ctx, bson.M{"forum_id": forumID})
}

// HasLiked reports whether a user has liked a post.
func (r *MongoForumRepo) HasLiked(forumID, userID int64) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.likes.CountDocuments(ctx, bson.M{"forum_id": forumID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
