package translatorRepo

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

// ErrNotFound is returned when no translator matches the lookup.
var ErrNotFound = errors.New("translator not found")

// MongoTranslatorRepo implements TranslatorRepository using MongoDB.
type MongoTranslatorRepo struct {
	coll *mongo.Collection
}

// NewMongoTranslatorRepo creates a new instance of TranslatorRepository using MongoDB.
func NewMongoTranslatorRepo() TranslatorRepository {
	repo := &MongoTranslatorRepo{coll: database.Collection("translators")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTranslatorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new translator document, assigning its id.
func (r *MongoTranslatorRepo) Create(translator *models.Translator) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextID("translators")
	if err != nil {
		return err
	}
	translator.ID = id

	if _, err := r.coll.InsertOne(ctx, translator); err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}
	return nil
}

// GetByID retrieves a translator by its unique ID.
func (r *MongoTranslatorRepo) GetByID(id int64) (*models.Translator, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var translator models.Translator
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&translator); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch translator with id %d: %w", id, err)
	}
	return &translator, nil
}

// GetByUserID retrieves the translator profile owned by a user.
func (r *MongoTranslatorRepo) GetByUserID(userID int64) (*models.Translator, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var translator models.Translator
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&translator); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch translator for user %d: %w", userID, err)
	}
	return &translator, nil
}

// List returns a page of translators plus the total count, in insertion order.
func (r *MongoTranslatorRepo) List(offset, limit int64) ([]models.Translator, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count translators: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list translators: %w", err)
	}
	defer cursor.Close(ctx)

	var translators []models.Translator
	if err := cursor.All(ctx, &translators); err != nil {
		return nil, 0, fmt.Errorf("failed to decode translators: %w", err)
	}
	return translators, total, nil
}

// Update fully replaces a translator's profile fields.
func (r *MongoTranslatorRepo) Update(translator *models.Translator) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": translator.ID}, translator)
	if err != nil {
		return fmt.Errorf("failed to update translator with id %d: %w", translator.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a translator document by its ID.
func (r *MongoTranslatorRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete translator with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
