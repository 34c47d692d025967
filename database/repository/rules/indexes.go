package rulesRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the catalog indexes. Category keys and option ids are unique.
func (r *MongoRulesRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "position", Value: 1}}},
		{
			Keys: bson.D{{Key: "options.id", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				"options.0": bson.M{"$exists": true},
			}),
		},
	}
	if _, err := r.catalog.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create catalog indexes: %w", err)
	}
	return nil
}
