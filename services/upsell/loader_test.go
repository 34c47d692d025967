package upsell

import (
	"context"
	"errors"
	"testing"

	rulesRepo "upsell/database/repository/rules"
	"upsell/models"
	"upsell/services/compatibility"

	"go.uber.org/zap"
)

type fakeRulesRepo struct {
	catalog    *models.Catalog
	rules      *models.CompatibilityRules
	catalogErr error
	indexed    bool
}

func (f *fakeRulesRepo) GetCatalog(ctx context.Context) (models.Catalog, error) {
	if f.catalogErr != nil {
		return models.Catalog{}, f.catalogErr
	}
	if f.catalog == nil {
		return models.Catalog{}, rulesRepo.ErrNoRules
	}
	return *f.catalog, nil
}

func (f *fakeRulesRepo) GetRules(ctx context.Context) (models.CompatibilityRules, error) {
	if f.rules == nil {
		return models.CompatibilityRules{}, rulesRepo.ErrNoRules
	}
	return *f.rules, nil
}

func (f *fakeRulesRepo) ReplaceCatalog(ctx context.Context, catalog models.Catalog) error {
	f.catalog = &catalog
	return nil
}

func (f *fakeRulesRepo) ReplaceRules(ctx context.Context, rules models.CompatibilityRules) error {
	f.rules = &rules
	return nil
}

func (f *fakeRulesRepo) EnsureIndexes(ctx context.Context) error {
	f.indexed = true
	return nil
}

func TestLoadCompatibilityEngine_FallsBackToDefaults(t *testing.T) {
	engine, err := LoadCompatibilityEngine(context.Background(), &fakeRulesRepo{}, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadCompatibilityEngine: %v", err)
	}
	if len(engine.Catalog().Categories) != len(compatibility.DefaultCatalog().Categories) {
		t.Error("expected the built-in catalog")
	}
	if len(engine.Rules().Conflicts) != len(compatibility.DefaultRules().Conflicts) {
		t.Error("expected the built-in rules")
	}
}

func TestLoadCompatibilityEngine_SeededData(t *testing.T) {
	repo := &fakeRulesRepo{}
	if err := SeedCompatibilityData(context.Background(), repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !repo.indexed {
		t.Error("seeding should create indexes")
	}
	repo.rules.Conflicts = repo.rules.Conflicts[:1]

	engine, err := LoadCompatibilityEngine(context.Background(), repo, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadCompatibilityEngine: %v", err)
	}
	if len(engine.Rules().Conflicts) != 1 {
		t.Errorf("expected stored rules, got %d conflict rules", len(engine.Rules().Conflicts))
	}
}

func TestLoadCompatibilityEngine_Errors(t *testing.T) {
	boom := errors.New("connection refused")
	if _, err := LoadCompatibilityEngine(context.Background(), &fakeRulesRepo{catalogErr: boom}, zap.NewNop()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}

}

func TestLoadCompatibilityEngine_UnknownRuleOptionsIgnored(t *testing.T) {
	rules := models.CompatibilityRules{Conflicts: []models.ConflictRule{
		{Option: "king-bed", Disables: []string{"hot-tub", "balcony"}, Reason: "test"},
	}}
	engine, err := LoadCompatibilityEngine(context.Background(), &fakeRulesRepo{rules: &rules}, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadCompatibilityEngine: %v", err)
	}

	catalog := engine.Catalog()
	king, _ := catalog.Option("king-bed")
	disabled := engine.EvaluateDisabledOptions(models.SelectedCustomizations{compatibility.CategoryBedType: king})
	if _, ok := disabled["hot-tub"]; ok {
		t.Errorf("unknown option should have no effect, got %+v", disabled["hot-tub"])
	}
	if !disabled["balcony"].Disabled {
		t.Error("known target of the same rule should still be disabled")
	}
}
