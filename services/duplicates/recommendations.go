package duplicates

import (
	"fmt"

	"upsell/models"
)

const (
	keepLastConfidence = 0.9
	mergeConfidence    = 0.85
	keepBestConfidence = 0.7
)

func recommend(group models.DuplicateGroup) models.DuplicateRecommendation {
	rec := models.DuplicateRecommendation{GroupID: group.ID}
	if len(group.Items) == 0 {
		return rec
	}

	switch group.MergeStrategy {
	case models.MergeKeepLast:
		keep := group.Items[len(group.Items)-1]
		drop := group.Items[:len(group.Items)-1]
		rec.Action = models.ActionRemoveDuplicates
		rec.KeepItemID = keep.ID()
		rec.RemoveItemIDs = ids(drop)
		rec.Confidence = keepLastConfidence
		rec.PriceImpact = -total(drop)
		rec.Description = fmt.Sprintf("Keep the latest %s and remove %d duplicate(s)", keep.Name(), len(drop))

	case models.MergeCombine:
		keep := group.Items[0]
		drop := group.Items[1:]
		units := 0
		current := 0.0
		for _, item := range group.Items {
			if item.Kind == models.KindExtra {
				units += item.Extra.Units
			}
			current += item.Price()
		}
		rec.Action = models.ActionMergeQuantities
		rec.KeepItemID = keep.ID()
		rec.RemoveItemIDs = ids(drop)
		rec.MergedUnits = units
		rec.Confidence = mergeConfidence
		if keep.Kind == models.KindExtra {
			rec.PriceImpact = keep.Extra.Price*float64(units) - current
		}
		rec.Description = fmt.Sprintf("Merge %d %s selections into one with %d unit(s)", len(group.Items), keep.Name(), units)

	case models.MergeKeepBest:
		best := BestItem(group.Items)
		var drop []models.SelectionItem
		for _, item := range group.Items {
			if item.ID() != best.ID() || item.Kind != best.Kind {
				drop = append(drop, item)
			}
		}
		rec.Action = models.ActionKeepBest
		rec.KeepItemID = best.ID()
		rec.RemoveItemIDs = ids(drop)
		rec.Confidence = keepBestConfidence
		rec.PriceImpact = -total(drop)
		rec.Description = fmt.Sprintf("Keep %s and remove the similar selection(s)", best.Name())
	}

	rec.PriceImpact = models.RoundCents(rec.PriceImpact)
	return rec
}

// BestItem picks the highest priced item, price standing in for quality.
// Ties go to the earliest item.
func BestItem(items []models.SelectionItem) models.SelectionItem {
	best := items[0]
	for _, item := range items[1:] {
		if item.Price() > best.Price() {
			best = item
		}
	}
	return best
}

func ids(items []models.SelectionItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID())
	}
	return out
}

func total(items []models.SelectionItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Price()
	}
	return sum
}
