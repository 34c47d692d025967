package rulesRepo

import (
	"context"
	"errors"

	"upsell/models"
)

// ErrNoRules is returned when the store holds no catalog or rule set yet.
var ErrNoRules = errors.New("no compatibility data stored")

// RulesRepository loads the read-only customization catalog and compatibility rules.
type RulesRepository interface {
	GetCatalog(ctx context.Context) (models.Catalog, error)
	GetRules(ctx context.Context) (models.CompatibilityRules, error)
	ReplaceCatalog(ctx context.Context, catalog models.Catalog) error
	ReplaceRules(ctx context.Context, rules models.CompatibilityRules) error
	EnsureIndexes(ctx context.Context) error
}
