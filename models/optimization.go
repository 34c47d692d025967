package models

import "time"

// RecommendationSource tells which analysis produced a recommendation.
type RecommendationSource string

const (
	SourceConflict  RecommendationSource = "conflict"
	SourceDuplicate RecommendationSource = "duplicate"
)

// Recommendation is the merged view of conflict resolutions and duplicate actions.
type Recommendation struct {
	ID          string               `json:"id"`
	Source      RecommendationSource `json:"source"`
	Action      string               `json:"action"`
	Description string               `json:"description"`
	ItemIDs     []string             `json:"itemIds"`
	Confidence  float64              `json:"confidence"`
	PriceImpact float64              `json:"priceImpact"`
}

// OptimizationReport combines every analysis of a selection.
type OptimizationReport struct {
	Conflicts       ConflictResult    `json:"conflicts"`
	Pricing         PricingResult     `json:"pricing"`
	Duplicates      DuplicateAnalysis `json:"duplicates"`
	Recommendations []Recommendation  `json:"recommendations"`
}

// Quote is a stored optimization report, valid until ExpiresAt.
type Quote struct {
	ID        string             `json:"id"`
	Report    OptimizationReport `json:"report"`
	CreatedAt time.Time          `json:"createdAt"`
	ExpiresAt time.Time          `json:"expiresAt"`
}
