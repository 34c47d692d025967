package models

import "fmt"

// CustomizationOption is a single room attribute choice from the catalog.
type CustomizationOption struct {
	ID    string  `json:"id" bson:"id" binding:"required"`
	Label string  `json:"label" bson:"label"`
	Price float64 `json:"price" bson:"price"`
}

// CustomizationCategory groups mutually-substitutable options (bed type, view, location...).
type CustomizationCategory struct {
	Key     string                `json:"key" bson:"key"`
	Label   string                `json:"label" bson:"label"`
	Options []CustomizationOption `json:"options" bson:"options"`
}

// Catalog is the read-only customization catalog loaded once per session.
type Catalog struct {
	Categories []CustomizationCategory `json:"categories" bson:"categories"`
}

// CategoryOf returns the key of the category owning optionID.
func (c Catalog) CategoryOf(optionID string) (string, bool) {
	for _, cat := range c.Categories {
		for _, opt := range cat.Options {
			if opt.ID == optionID {
				return cat.Key, true
			}
		}
	}
	return "", false
}

// Option looks up an option by id across all categories.
func (c Catalog) Option(optionID string) (CustomizationOption, bool) {
	for _, cat := range c.Categories {
		for _, opt := range cat.Options {
			if opt.ID == optionID {
				return opt, true
			}
		}
	}
	return CustomizationOption{}, false
}

// ValidateSelection checks that every selected option belongs to the catalog of its category.
func (c Catalog) ValidateSelection(selected SelectedCustomizations) error {
	for category, opt := range selected {
		owner, ok := c.CategoryOf(opt.ID)
		if !ok {
			return fmt.Errorf("option %q is not in the catalog", opt.ID)
		}
		if owner != category {
			return fmt.Errorf("option %q belongs to category %q, not %q", opt.ID, owner, category)
		}
	}
	return nil
}

// SelectedCustomizations maps a category key to the single option chosen in it.
type SelectedCustomizations map[string]CustomizationOption

// Clone returns a shallow copy safe to mutate.
func (s SelectedCustomizations) Clone() SelectedCustomizations {
	out := make(SelectedCustomizations, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Total is the sum of the selected option prices.
func (s SelectedCustomizations) Total() float64 {
	total := 0.0
	for _, opt := range s {
		total += opt.Price
	}
	return total
}

// CategoryOf returns the category in which optionID is currently selected.
func (s SelectedCustomizations) CategoryOf(optionID string) (string, bool) {
	for category, opt := range s {
		if opt.ID == optionID {
			return category, true
		}
	}
	return "", false
}

// ExclusiveGroup is a set of option ids where at most one may be active.
type ExclusiveGroup struct {
	Options []string `json:"options" bson:"options"`
	Reason  string   `json:"reason" bson:"reason"`
}

// ConflictRule is a directed rule: selecting Option disables every id in Disables.
type ConflictRule struct {
	Option   string   `json:"option" bson:"option"`
	Disables []string `json:"disables" bson:"disables"`
	Reason   string   `json:"reason" bson:"reason"`
}

// CompatibilityRules holds both rule families plus the categories exempt from exclusivity.
type CompatibilityRules struct {
	MutuallyExclusive []ExclusiveGroup `json:"mutuallyExclusive" bson:"mutuallyExclusive"`
	Conflicts         []ConflictRule   `json:"conflicts" bson:"conflicts"`
	ExemptCategories  []string         `json:"exemptCategories" bson:"exemptCategories"`
}

// IsExempt reports whether category never participates in mutual exclusion.
func (r CompatibilityRules) IsExempt(category string) bool {
	if category == "" {
		return false
	}
	for _, c := range r.ExemptCategories {
		if c == category {
			return true
		}
	}
	return false
}

// DisabledOption is the derived disabled state of one option.
type DisabledOption struct {
	Disabled      bool     `json:"disabled"`
	Reason        string   `json:"reason"`
	ConflictsWith []string `json:"conflictsWith"`
}

// DisabledOptions maps option id to its disabled state.
type DisabledOptions map[string]DisabledOption

// ConflictType classifies a single-choice conflict.
type ConflictType string

const (
	ConflictMutuallyExclusive ConflictType = "mutually_exclusive"
	ConflictLogical           ConflictType = "logical_conflict"
)

// OptionRef identifies an option together with its category.
type OptionRef struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// ConflictResolution describes a collision between a new choice and an existing one.
// CurrentOption is the option already selected; ConflictingOption is the one being added.
type ConflictResolution struct {
	Type              ConflictType `json:"type"`
	CurrentOption     OptionRef    `json:"currentOption"`
	ConflictingOption OptionRef    `json:"conflictingOption"`
	Reason            string       `json:"reason"`
}
