package compatibility

import (
	"sort"

	"upsell/models"
)

// EvaluateDisabledOptions recomputes the disabled view of the catalog for the
// current selection. Directed conflict rules are applied after the exclusive
// groups and overwrite the reason when both hit the same option.
func (e *Engine) EvaluateDisabledOptions(selected models.SelectedCustomizations) models.DisabledOptions {
	disabled := make(models.DisabledOptions)
	selectedIn := selectedCategories(selected)

	for _, group := range e.rules.MutuallyExclusive {
		// Members from exempt categories neither count as a choice nor receive disabling.
		var chosen []string
		for _, id := range group.Options {
			if category, ok := selectedIn[id]; ok && !e.rules.IsExempt(category) {
				chosen = append(chosen, id)
			}
		}
		if len(chosen) != 1 {
			continue
		}
		trigger := chosen[0]
		for _, id := range group.Options {
			if id == trigger || !e.known(id, selectedIn) || e.rules.IsExempt(e.categoryOf(id, selectedIn)) {
				continue
			}
			markDisabled(disabled, id, trigger, group.Reason, false)
		}
	}

	for _, rule := range e.rules.Conflicts {
		if _, ok := selectedIn[rule.Option]; !ok {
			continue
		}
		for _, id := range rule.Disables {
			if id == rule.Option || !e.known(id, selectedIn) {
				continue
			}
			markDisabled(disabled, id, rule.Option, rule.Reason, true)
		}
	}

	return disabled
}

// CheckForConflicts simulates selecting newOptionID and reports the first
// collision with the current selection, or nil when the choice can be committed.
// An option already chosen in newOptionCategory is ignored since the new choice replaces it.
func (e *Engine) CheckForConflicts(newOptionID, newOptionCategory string, selected models.SelectedCustomizations, catalog models.Catalog) *models.ConflictResolution {
	if len(selected) == 0 {
		return nil
	}
	if newOptionCategory == "" {
		newOptionCategory, _ = catalog.CategoryOf(newOptionID)
	}
	newRef := optionRef(newOptionID, newOptionCategory, catalog)

	others := make(map[string]string)
	for category, opt := range selected {
		if category == newOptionCategory || opt.ID == newOptionID {
			continue
		}
		others[opt.ID] = category
	}
	if len(others) == 0 {
		return nil
	}

	if !e.rules.IsExempt(newOptionCategory) {
		for _, group := range e.rules.MutuallyExclusive {
			if !contains(group.Options, newOptionID) {
				continue
			}
			for _, id := range group.Options {
				category, ok := others[id]
				if !ok || e.rules.IsExempt(category) {
					continue
				}
				return &models.ConflictResolution{
					Type:              models.ConflictMutuallyExclusive,
					CurrentOption:     selectedRef(id, category, selected),
					ConflictingOption: newRef,
					Reason:            group.Reason,
				}
			}
		}
	}

	for _, rule := range e.rules.Conflicts {
		if rule.Option != newOptionID {
			continue
		}
		for _, id := range rule.Disables {
			if category, ok := others[id]; ok {
				return &models.ConflictResolution{
					Type:              models.ConflictLogical,
					CurrentOption:     selectedRef(id, category, selected),
					ConflictingOption: newRef,
					Reason:            rule.Reason,
				}
			}
		}
	}

	for _, id := range sortedKeys(others) {
		for _, rule := range e.rules.Conflicts {
			if rule.Option != id || !contains(rule.Disables, newOptionID) {
				continue
			}
			return &models.ConflictResolution{
				Type:              models.ConflictLogical,
				CurrentOption:     selectedRef(id, others[id], selected),
				ConflictingOption: newRef,
				Reason:            rule.Reason,
			}
		}
	}

	return nil
}

// ResolveConflicts returns the selection with every option that collides with
// newOptionID removed when removeConflicting is set. Otherwise the selection is
// returned unchanged. The input map is never mutated.
func (e *Engine) ResolveConflicts(newOptionID, newOptionCategory string, selected models.SelectedCustomizations, removeConflicting bool) models.SelectedCustomizations {
	resolved := selected.Clone()
	if !removeConflicting {
		return resolved
	}
	if newOptionCategory == "" {
		newOptionCategory, _ = e.catalog.CategoryOf(newOptionID)
	}
	for category, opt := range selected {
		if opt.ID == newOptionID {
			continue
		}
		if e.collides(newOptionID, newOptionCategory, opt.ID, category) {
			delete(resolved, category)
		}
	}
	return resolved
}

// ApplySelection commits option into category, replacing any previous choice there.
func (e *Engine) ApplySelection(option models.CustomizationOption, category string, selected models.SelectedCustomizations) models.SelectedCustomizations {
	next := selected.Clone()
	next[category] = option
	return next
}

func (e *Engine) collides(newID, newCategory, otherID, otherCategory string) bool {
	if !e.rules.IsExempt(newCategory) && !e.rules.IsExempt(otherCategory) {
		for _, group := range e.rules.MutuallyExclusive {
			if contains(group.Options, newID) && contains(group.Options, otherID) {
				return true
			}
		}
	}
	for _, rule := range e.rules.Conflicts {
		if rule.Option == newID && contains(rule.Disables, otherID) {
			return true
		}
		if rule.Option == otherID && contains(rule.Disables, newID) {
			return true
		}
	}
	return false
}

// categoryOf resolves the owning category of an option, preferring the selection.
func (e *Engine) categoryOf(optionID string, selectedIn map[string]string) string {
	if category, ok := selectedIn[optionID]; ok {
		return category
	}
	category, _ := e.catalog.CategoryOf(optionID)
	return category
}

// known reports whether optionID exists. Without a catalog every id is known.
func (e *Engine) known(optionID string, selectedIn map[string]string) bool {
	if len(e.catalog.Categories) == 0 {
		return true
	}
	if _, ok := selectedIn[optionID]; ok {
		return true
	}
	_, ok := e.catalog.CategoryOf(optionID)
	return ok
}

func markDisabled(disabled models.DisabledOptions, id, trigger, reason string, overwriteReason bool) {
	entry, exists := disabled[id]
	if !exists || overwriteReason {
		entry.Reason = reason
	}
	entry.Disabled = true
	if !contains(entry.ConflictsWith, trigger) {
		entry.ConflictsWith = append(entry.ConflictsWith, trigger)
	}
	disabled[id] = entry
}

func selectedCategories(selected models.SelectedCustomizations) map[string]string {
	out := make(map[string]string, len(selected))
	for category, opt := range selected {
		out[opt.ID] = category
	}
	return out
}

func optionRef(id, category string, catalog models.Catalog) models.OptionRef {
	ref := models.OptionRef{ID: id, Label: id, Category: category}
	if opt, ok := catalog.Option(id); ok && opt.Label != "" {
		ref.Label = opt.Label
	}
	return ref
}

func selectedRef(id, category string, selected models.SelectedCustomizations) models.OptionRef {
	ref := models.OptionRef{ID: id, Label: id, Category: category}
	if opt, ok := selected[category]; ok && opt.Label != "" {
		ref.Label = opt.Label
	}
	return ref
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
