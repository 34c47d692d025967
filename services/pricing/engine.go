package pricing

import (
	"math"
	"time"

	"upsell/models"
)

// QuoteValidity is how long a computed price is honored.
const QuoteValidity = 24 * time.Hour

// PricingEngine prices a selection under a pricing context.
type PricingEngine interface {
	CalculateOptimizedPricing(rooms []models.SelectedRoom, extras []models.SelectedExtra, ctx models.PricingContext) models.PricingResult
}

// Engine is the stateless PricingEngine. Now is injectable for tests.
type Engine struct {
	Now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// DefaultContext is the context used when the caller supplies none.
func DefaultContext() models.PricingContext {
	return models.PricingContext{
		SeasonalMultiplier: 1,
		LoyaltyDiscount:    0,
		GroupSize:          1,
		AdvanceBookingDays: 14,
	}
}

type subtotals struct {
	rooms    float64
	extras   float64
	roomIDs  []string
	extraIDs []string
}

func (s subtotals) total() float64 { return s.rooms + s.extras }

func (s subtotals) allIDs() []string {
	ids := make([]string, 0, len(s.roomIDs)+len(s.extraIDs))
	ids = append(ids, s.roomIDs...)
	return append(ids, s.extraIDs...)
}

// CalculateOptimizedPricing computes the base total, additive discounts and
// surcharges, the per-item breakdown and a confidence score.
func (e *Engine) CalculateOptimizedPricing(rooms []models.SelectedRoom, extras []models.SelectedExtra, ctx models.PricingContext) models.PricingResult {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	base := subtotals{}
	for _, room := range rooms {
		base.rooms += room.Total()
		base.roomIDs = append(base.roomIDs, room.ID)
	}
	for _, extra := range extras {
		base.extras += extra.Total()
		base.extraIDs = append(base.extraIDs, extra.ID)
	}

	result := models.PricingResult{
		BaseTotal:  models.RoundCents(base.total()),
		Discounts:  discounts(base, len(extras), ctx),
		Surcharges: surcharges(base, ctx),
		Breakdown:  []models.BreakdownLine{},
		Confidence: 1,
		ValidUntil: now().Add(QuoteValidity),
	}

	savings, added := 0.0, 0.0
	for _, d := range result.Discounts {
		savings += d.Savings
	}
	for _, s := range result.Surcharges {
		added += s.Amount
	}
	result.Savings = models.RoundCents(savings)
	result.FinalTotal = models.RoundCents(math.Max(0, result.BaseTotal-savings+added))

	if len(rooms) == 0 && len(extras) == 0 {
		return result
	}

	for _, room := range rooms {
		result.Breakdown = append(result.Breakdown, breakdownLine(models.RoomItem(room), result.Discounts, result.Surcharges))
	}
	for _, extra := range extras {
		result.Breakdown = append(result.Breakdown, breakdownLine(models.ExtraItem(extra), result.Discounts, result.Surcharges))
	}
	result.Confidence = confidence(len(rooms), len(extras), ctx)
	return result
}

var (
	roomsOnly  = []models.ItemKind{models.KindRoom}
	extrasOnly = []models.ItemKind{models.KindExtra}
	allKinds   = []models.ItemKind{models.KindRoom, models.KindExtra}
)

func discounts(base subtotals, extraCount int, ctx models.PricingContext) []models.Discount {
	out := []models.Discount{}

	if ctx.AdvanceBookingDays > 30 && base.rooms > 0 {
		rate := math.Min(0.15, float64(ctx.AdvanceBookingDays)/365*0.5)
		out = append(out, models.Discount{
			ID:              "early_booking",
			Name:            "Early Booking Discount",
			Rate:            rate,
			Savings:         models.RoundCents(base.rooms * rate),
			ApplicableItems: base.roomIDs,
			AppliesTo:       roomsOnly,
			Description:     "Booked more than 30 days in advance",
		})
	}

	if extraCount >= 3 && base.extras > 0 {
		rate := 0.10
		out = append(out, models.Discount{
			ID:              "bulk_services",
			Name:            "Bulk Services Discount",
			Rate:            rate,
			Savings:         models.RoundCents(base.extras * rate),
			ApplicableItems: base.extraIDs,
			AppliesTo:       extrasOnly,
			Description:     "Three or more services selected",
		})
	}

	if ctx.LoyaltyDiscount > 0 && base.rooms > 0 {
		out = append(out, models.Discount{
			ID:              "loyalty",
			Name:            "Loyalty Discount",
			Rate:            ctx.LoyaltyDiscount,
			Savings:         models.RoundCents(base.rooms * ctx.LoyaltyDiscount),
			ApplicableItems: base.roomIDs,
			AppliesTo:       roomsOnly,
			Description:     "Loyalty program member rate",
		})
	}

	if ctx.GroupSize > 4 && base.total() > 0 {
		rate := math.Min(0.2, float64(ctx.GroupSize-4)*0.03)
		out = append(out, models.Discount{
			ID:              "group_size",
			Name:            "Group Discount",
			Rate:            rate,
			Savings:         models.RoundCents(base.total() * rate),
			ApplicableItems: base.allIDs(),
			AppliesTo:       allKinds,
			Description:     "Group of more than four guests",
		})
	}

	return out
}

func surcharges(base subtotals, ctx models.PricingContext) []models.Surcharge {
	out := []models.Surcharge{}

	if ctx.SeasonalMultiplier > 1 && base.total() > 0 {
		rate := ctx.SeasonalMultiplier - 1
		out = append(out, models.Surcharge{
			ID:              "peak_season",
			Name:            "Peak Season Surcharge",
			Rate:            rate,
			Amount:          models.RoundCents(base.total() * rate),
			ApplicableItems: base.allIDs(),
			AppliesTo:       allKinds,
			Reason:          "High demand period",
		})
	}

	if ctx.AdvanceBookingDays < 7 && base.rooms > 0 {
		rate := math.Max(0, float64(7-ctx.AdvanceBookingDays)*0.02)
		out = append(out, models.Surcharge{
			ID:              "last_minute",
			Name:            "Last Minute Booking",
			Rate:            rate,
			Amount:          models.RoundCents(base.rooms * rate),
			ApplicableItems: base.roomIDs,
			AppliesTo:       roomsOnly,
			Reason:          "Booked less than 7 days in advance",
		})
	}

	return out
}
