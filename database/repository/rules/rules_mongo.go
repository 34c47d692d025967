package rulesRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"upsell/models"
)

const (
	catalogCollection = "customization_catalog"
	rulesCollection   = "compatibility_rules"
	rulesDocumentID   = "default"
)

// rulesDocument wraps the rule set with a fixed id so it can be upserted.
type rulesDocument struct {
	ID    string                    `bson:"_id"`
	Rules models.CompatibilityRules `bson:"rules"`
}

// MongoRulesRepo implements RulesRepository using MongoDB.
type MongoRulesRepo struct {
	catalog *mongo.Collection
	rules   *mongo.Collection
}

func NewMongoRulesRepo(db *mongo.Database) RulesRepository {
	return &MongoRulesRepo{
		catalog: db.Collection(catalogCollection),
		rules:   db.Collection(rulesCollection),
	}
}

func (r *MongoRulesRepo) GetCatalog(ctx context.Context) (models.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.catalog.Find(ctx, bson.M{}, opts)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("failed to retrieve catalog: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.CustomizationCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return models.Catalog{}, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(categories) == 0 {
		return models.Catalog{}, ErrNoRules
	}
	return models.Catalog{Categories: categories}, nil
}

func (r *MongoRulesRepo) GetRules(ctx context.Context) (models.CompatibilityRules, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc rulesDocument
	err := r.rules.FindOne(ctx, bson.M{"_id": rulesDocumentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.CompatibilityRules{}, ErrNoRules
	}
	if err != nil {
		return models.CompatibilityRules{}, fmt.Errorf("failed to fetch compatibility rules: %w", err)
	}
	return doc.Rules, nil
}

// ReplaceCatalog swaps the stored catalog for the given one, keeping category order.
func (r *MongoRulesRepo) ReplaceCatalog(ctx context.Context, catalog models.Catalog) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.catalog.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}
	if len(catalog.Categories) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(catalog.Categories))
	for i, cat := range catalog.Categories {
		docs = append(docs, bson.M{
			"key":      cat.Key,
			"label":    cat.Label,
			"options":  cat.Options,
			"position": i,
		})
	}
	if _, err := r.catalog.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert catalog: %w", err)
	}
	return nil
}

func (r *MongoRulesRepo) ReplaceRules(ctx context.Context, rules models.CompatibilityRules) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": rulesDocumentID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.rules.ReplaceOne(ctx, filter, rulesDocument{ID: rulesDocumentID, Rules: rules}, opts); err != nil {
		return fmt.Errorf("failed to store compatibility rules: %w", err)
	}
	return nil
}
