package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NextID issues the next integer id for the named entity from the shared
// counters collection. The $inc runs atomically server-side, so concurrent
// creators never see the same value.
func NextID(entity string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": entity},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to issue id for %s: %w", entity, err)
	}
	return counter.Seq, nil
}
