package conflicts

import (
	"fmt"
	"sort"

	"upsell/models"
)

// Confidence of each canned strategy.
const (
	duplicateConfidence  = 0.9
	quotaConfidence      = 0.85
	replaceConfidence    = 0.75
	rescheduleConfidence = 0.6
	modifyConfidence     = 0.5
)

// GenerateResolutions maps a conflict to its canned resolution strategy.
// rooms and extras give the selection order used to tell which item is most recent.
func (r *Resolver) GenerateResolutions(conflict models.ConflictDetail, rooms []models.SelectedRoom, extras []models.SelectedExtra) []models.ResolutionSuggestion {
	if len(conflict.Items) == 0 {
		return nil
	}
	items := inSelectionOrder(conflict.Items, rooms, extras)

	suggestion := models.ResolutionSuggestion{
		ID:         "resolution_" + conflict.ID,
		ConflictID: conflict.ID,
	}

	switch conflict.Type {
	case models.ConflictDuplicate:
		keep := items[len(items)-1]
		drop := items[:len(items)-1]
		suggestion.Strategy = models.StrategyRemove
		suggestion.Description = fmt.Sprintf("Keep the most recent %s and remove %d duplicate(s)", keep.Name(), len(drop))
		suggestion.Actions = actions("remove", drop, "duplicate of "+keep.ID())
		suggestion.Confidence = duplicateConfidence
		suggestion.Impact = models.ResolutionImpact{PriceDelta: -sumPrices(drop), Quality: models.QualityNeutral, UXDelta: 0.3}

	case models.ConflictIncompatible:
		keep, drop := items[0], items[1:]
		suggestion.Strategy = models.StrategyReplace
		suggestion.Description = fmt.Sprintf("Keep %s and drop the incompatible selection", keep.Name())
		suggestion.Actions = actions("remove", drop, "incompatible with "+keep.ID())
		suggestion.Confidence = replaceConfidence
		suggestion.Impact = models.ResolutionImpact{PriceDelta: -sumPrices(drop), Quality: models.QualityNeutral, UXDelta: 0.2}

	case models.ConflictTime:
		moved := items[1:]
		suggestion.Strategy = models.StrategyReschedule
		suggestion.Description = fmt.Sprintf("Move %d item(s) to a different date", len(moved))
		suggestion.Actions = actions("reschedule", moved, "choose a non-overlapping date")
		suggestion.Confidence = rescheduleConfidence
		suggestion.Impact = models.ResolutionImpact{PriceDelta: 0, Quality: models.QualityNeutral, UXDelta: -0.1}

	case models.ConflictQuotaExceeded:
		suggestion.Strategy = models.StrategyRemove
		suggestion.Description = fmt.Sprintf("Remove %d room(s) over the reservation quota", len(conflict.Items))
		suggestion.Actions = actions("remove", conflict.Items, "over quota")
		suggestion.Confidence = quotaConfidence
		suggestion.Impact = models.ResolutionImpact{PriceDelta: -sumPrices(conflict.Items), Quality: models.QualityDegrade, UXDelta: 0.1}

	case models.ConflictResource:
		room := items[0]
		for _, item := range items {
			if item.Kind == models.KindRoom {
				room = item
				break
			}
		}
		suggestion.Strategy = models.StrategyModify
		suggestion.Description = fmt.Sprintf("Upgrade %s to a room that fits the group", room.Name())
		suggestion.Actions = actions("upgrade", []models.SelectionItem{room}, "larger occupancy")
		suggestion.Confidence = modifyConfidence
		suggestion.Impact = models.ResolutionImpact{PriceDelta: 0, Quality: models.QualityImprove, UXDelta: 0.2}

	default:
		return nil
	}

	suggestion.Impact.PriceDelta = models.RoundCents(suggestion.Impact.PriceDelta)
	return []models.ResolutionSuggestion{suggestion}
}

func actions(action string, items []models.SelectionItem, details string) []models.ResolutionAction {
	out := make([]models.ResolutionAction, 0, len(items))
	for _, item := range items {
		out = append(out, models.ResolutionAction{Action: action, ItemID: item.ID(), Kind: item.Kind, Details: details})
	}
	return out
}

func sumPrices(items []models.SelectionItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price()
	}
	return total
}

// inSelectionOrder sorts conflict items by their position in the selection,
// rooms before extras. Items missing from the selection keep their relative order at the end.
func inSelectionOrder(items []models.SelectionItem, rooms []models.SelectedRoom, extras []models.SelectedExtra) []models.SelectionItem {
	position := make(map[string]int, len(rooms)+len(extras))
	for i, room := range rooms {
		position[string(models.KindRoom)+":"+room.ID] = i
	}
	for i, extra := range extras {
		position[string(models.KindExtra)+":"+extra.ID] = len(rooms) + i
	}
	rank := func(item models.SelectionItem) int {
		if p, ok := position[string(item.Kind)+":"+item.ID()]; ok {
			return p
		}
		return len(rooms) + len(extras)
	}

	ordered := make([]models.SelectionItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool { return rank(ordered[i]) < rank(ordered[j]) })
	return ordered
}
