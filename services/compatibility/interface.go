package compatibility

import "upsell/models"

// CompatibilityEngine evaluates customization rules for a single room.
type CompatibilityEngine interface {
	EvaluateDisabledOptions(selected models.SelectedCustomizations) models.DisabledOptions
	CheckForConflicts(newOptionID, newOptionCategory string, selected models.SelectedCustomizations, catalog models.Catalog) *models.ConflictResolution
	ResolveConflicts(newOptionID, newOptionCategory string, selected models.SelectedCustomizations, removeConflicting bool) models.SelectedCustomizations
	ApplySelection(option models.CustomizationOption, category string, selected models.SelectedCustomizations) models.SelectedCustomizations
	Rules() models.CompatibilityRules
	Catalog() models.Catalog
}

// Engine implements CompatibilityEngine over an immutable rule set.
type Engine struct {
	rules   models.CompatibilityRules
	catalog models.Catalog
}

// NewEngine builds an engine. The catalog is used to find the category of
// options that are disabled but not selected; it may be empty.
func NewEngine(rules models.CompatibilityRules, catalog models.Catalog) *Engine {
	return &Engine{rules: rules, catalog: catalog}
}

// NewDefaultEngine builds an engine over the built-in rules and catalog.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRules(), DefaultCatalog())
}

func (e *Engine) Rules() models.CompatibilityRules { return e.rules }

func (e *Engine) Catalog() models.Catalog { return e.catalog }
