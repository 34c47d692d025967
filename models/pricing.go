package models

import (
	"math"
	"time"
)

// RoundCents rounds a money amount to two decimals.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// PricingContext carries the commercial circumstances of a booking.
type PricingContext struct {
	SeasonalMultiplier float64 `json:"seasonalMultiplier" mapstructure:"DEFAULT_SEASONAL_MULTIPLIER"`
	LoyaltyDiscount    float64 `json:"loyaltyDiscount" binding:"gte=0,lte=1" mapstructure:"DEFAULT_LOYALTY_DISCOUNT"`
	GroupSize          int     `json:"groupSize" binding:"gte=0" mapstructure:"DEFAULT_GROUP_SIZE"`
	AdvanceBookingDays int     `json:"advanceBookingDays" mapstructure:"DEFAULT_ADVANCE_BOOKING_DAYS"`
}

// PricingOverrides is a partial PricingContext as sent by callers.
// Fields left out keep the value of the base context.
type PricingOverrides struct {
	SeasonalMultiplier *float64 `json:"seasonalMultiplier" binding:"omitempty,gt=0"`
	LoyaltyDiscount    *float64 `json:"loyaltyDiscount" binding:"omitempty,gte=0,lte=1"`
	GroupSize          *int     `json:"groupSize" binding:"omitempty,gte=0"`
	AdvanceBookingDays *int     `json:"advanceBookingDays"`
}

// Apply returns base with every supplied field replaced. A nil receiver returns base.
func (o *PricingOverrides) Apply(base PricingContext) PricingContext {
	if o == nil {
		return base
	}
	if o.SeasonalMultiplier != nil {
		base.SeasonalMultiplier = *o.SeasonalMultiplier
	}
	if o.LoyaltyDiscount != nil {
		base.LoyaltyDiscount = *o.LoyaltyDiscount
	}
	if o.GroupSize != nil {
		base.GroupSize = *o.GroupSize
	}
	if o.AdvanceBookingDays != nil {
		base.AdvanceBookingDays = *o.AdvanceBookingDays
	}
	return base
}

// Discount is a price reduction applied to the base total.
type Discount struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Rate            float64    `json:"rate"`
	Savings         float64    `json:"savings"`
	ApplicableItems []string   `json:"applicableItems"`
	AppliesTo       []ItemKind `json:"appliesTo"`
	Description     string     `json:"description"`
}

// Surcharge is a price increase applied to the base total.
type Surcharge struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Rate            float64    `json:"rate"`
	Amount          float64    `json:"amount"`
	ApplicableItems []string   `json:"applicableItems"`
	AppliesTo       []ItemKind `json:"appliesTo"`
	Reason          string     `json:"reason"`
}

// PriceAdjustment is one named, signed line of an item breakdown.
type PriceAdjustment struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// BreakdownLine is the per-item pricing detail.
type BreakdownLine struct {
	ItemID      string            `json:"itemId"`
	Kind        ItemKind          `json:"kind"`
	Name        string            `json:"name"`
	BasePrice   float64           `json:"basePrice"`
	Adjustments []PriceAdjustment `json:"adjustments"`
	FinalPrice  float64           `json:"finalPrice"`
}

// PricingResult is the itemized, priced total of a selection.
type PricingResult struct {
	BaseTotal  float64         `json:"baseTotal"`
	Discounts  []Discount      `json:"discounts"`
	Surcharges []Surcharge     `json:"surcharges"`
	FinalTotal float64         `json:"finalTotal"`
	Savings    float64         `json:"savings"`
	Breakdown  []BreakdownLine `json:"breakdown"`
	Confidence float64         `json:"confidence"`
	ValidUntil time.Time       `json:"validUntil"`
}
