package upsell

import (
	"context"
	"errors"
	"fmt"

	rulesRepo "upsell/database/repository/rules"
	"upsell/models"
	"upsell/services/compatibility"

	"go.uber.org/zap"
)

// LoadCompatibilityEngine reads the catalog and rules from repo. Either part
// falls back to the built-in defaults when nothing has been stored yet.
func LoadCompatibilityEngine(ctx context.Context, repo rulesRepo.RulesRepository, logger *zap.Logger) (*compatibility.Engine, error) {
	catalog, err := repo.GetCatalog(ctx)
	switch {
	case errors.Is(err, rulesRepo.ErrNoRules):
		logger.Warn("No stored catalog, using built-in catalog")
		catalog = compatibility.DefaultCatalog()
	case err != nil:
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	rules, err := repo.GetRules(ctx)
	switch {
	case errors.Is(err, rulesRepo.ErrNoRules):
		logger.Warn("No stored compatibility rules, using built-in rules")
		rules = compatibility.DefaultRules()
	case err != nil:
		return nil, fmt.Errorf("failed to load compatibility rules: %w", err)
	}

	for _, id := range unknownRuleOptions(rules, catalog) {
		logger.Warn("Compatibility rule names an option missing from the catalog", zap.String("optionId", id))
	}
	logger.Info("Compatibility rules loaded",
		zap.Int("categories", len(catalog.Categories)),
		zap.Int("exclusiveGroups", len(rules.MutuallyExclusive)),
		zap.Int("conflictRules", len(rules.Conflicts)),
	)
	return compatibility.NewEngine(rules, catalog), nil
}

// SeedCompatibilityData stores the built-in catalog and rules in repo.
func SeedCompatibilityData(ctx context.Context, repo rulesRepo.RulesRepository) error {
	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := repo.ReplaceCatalog(ctx, compatibility.DefaultCatalog()); err != nil {
		return err
	}
	return repo.ReplaceRules(ctx, compatibility.DefaultRules())
}

// unknownRuleOptions lists option ids named by rules but absent from the
// catalog. The engine never matches them, so they only warrant a warning.
func unknownRuleOptions(rules models.CompatibilityRules, catalog models.Catalog) []string {
	seen := make(map[string]bool)
	var unknown []string
	check := func(id string) {
		if _, ok := catalog.CategoryOf(id); ok || seen[id] {
			return
		}
		seen[id] = true
		unknown = append(unknown, id)
	}
	for _, group := range rules.MutuallyExclusive {
		for _, id := range group.Options {
			check(id)
		}
	}
	for _, rule := range rules.Conflicts {
		check(rule.Option)
		for _, id := range rule.Disables {
			check(id)
		}
	}
	return unknown
}
