package pricing

import (
	"math"

	"upsell/models"
)

// breakdownLine re-derives the adjustments that name this item as applicable.
func breakdownLine(item models.SelectionItem, discounts []models.Discount, surcharges []models.Surcharge) models.BreakdownLine {
	price := item.Price()
	line := models.BreakdownLine{
		ItemID:      item.ID(),
		Kind:        item.Kind,
		Name:        item.Name(),
		BasePrice:   models.RoundCents(price),
		Adjustments: []models.PriceAdjustment{},
	}

	final := price
	for _, d := range discounts {
		if !applies(d.AppliesTo, d.ApplicableItems, item) {
			continue
		}
		amount := models.RoundCents(price * d.Rate)
		line.Adjustments = append(line.Adjustments, models.PriceAdjustment{ID: d.ID, Name: d.Name, Amount: -amount})
		final -= amount
	}
	for _, s := range surcharges {
		if !applies(s.AppliesTo, s.ApplicableItems, item) {
			continue
		}
		amount := models.RoundCents(price * s.Rate)
		line.Adjustments = append(line.Adjustments, models.PriceAdjustment{ID: s.ID, Name: s.Name, Amount: amount})
		final += amount
	}
	line.FinalPrice = models.RoundCents(math.Max(0, final))
	return line
}

// applies matches on kind and id, so a room and an extra sharing an id stay apart.
func applies(kinds []models.ItemKind, ids []string, item models.SelectionItem) bool {
	kindMatch := false
	for _, k := range kinds {
		if k == item.Kind {
			kindMatch = true
			break
		}
	}
	if !kindMatch {
		return false
	}
	for _, v := range ids {
		if v == item.ID() {
			return true
		}
	}
	return false
}

// confidence is a heuristic trust score, floored at 0.5.
func confidence(rooms, extras int, ctx models.PricingContext) float64 {
	score := 1.0
	if rooms > 2 {
		score -= 0.1
	}
	if extras > 5 {
		score -= 0.1
	}
	if ctx.SeasonalMultiplier > 1.5 {
		score -= 0.2
	}
	if ctx.AdvanceBookingDays < 1 {
		score -= 0.3
	}
	return math.Max(0.5, math.Round(score*100)/100)
}
