package upsell

import (
	"sort"

	"upsell/models"
	"upsell/services/conflicts"
	"upsell/services/duplicates"
	"upsell/services/pricing"
)

// Optimizer composes the conflict, duplicate and pricing engines into one report.
type Optimizer struct {
	Conflicts  conflicts.ConflictResolver
	Duplicates duplicates.DuplicateDetector
	Pricing    pricing.PricingEngine
}

func NewOptimizer() *Optimizer {
	return &Optimizer{
		Conflicts:  conflicts.NewResolver(),
		Duplicates: duplicates.NewDetector(),
		Pricing:    pricing.NewEngine(),
	}
}

// OptimizeSelections analyzes a selection with the default engines.
func OptimizeSelections(rooms []models.SelectedRoom, extras []models.SelectedExtra, ctx models.PricingContext) models.OptimizationReport {
	return NewOptimizer().Optimize(rooms, extras, ctx)
}

// Optimize runs every analysis and merges their recommendations, most confident first.
func (o *Optimizer) Optimize(rooms []models.SelectedRoom, extras []models.SelectedExtra, ctx models.PricingContext) models.OptimizationReport {
	report := models.OptimizationReport{
		Conflicts:  o.Conflicts.AnalyzeConflicts(rooms, extras),
		Duplicates: o.Duplicates.AnalyzeDuplicates(rooms, extras),
		Pricing:    o.Pricing.CalculateOptimizedPricing(rooms, extras, ctx),
	}
	report.Recommendations = mergeRecommendations(report.Conflicts, report.Duplicates)
	return report
}

func mergeRecommendations(c models.ConflictResult, d models.DuplicateAnalysis) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(c.Resolutions)+len(d.Recommendations))
	for _, res := range c.Resolutions {
		itemIDs := make([]string, 0, len(res.Actions))
		for _, a := range res.Actions {
			itemIDs = append(itemIDs, a.ItemID)
		}
		out = append(out, models.Recommendation{
			ID:          res.ID,
			Source:      models.SourceConflict,
			Action:      string(res.Strategy),
			Description: res.Description,
			ItemIDs:     itemIDs,
			Confidence:  res.Confidence,
			PriceImpact: res.Impact.PriceDelta,
		})
	}
	for _, rec := range d.Recommendations {
		out = append(out, models.Recommendation{
			ID:          "duplicate_" + rec.GroupID,
			Source:      models.SourceDuplicate,
			Action:      string(rec.Action),
			Description: rec.Description,
			ItemIDs:     rec.RemoveItemIDs,
			Confidence:  rec.Confidence,
			PriceImpact: rec.PriceImpact,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}
