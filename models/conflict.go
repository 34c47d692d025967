package models

// ConflictKind classifies a multi-item conflict.
type ConflictKind string

const (
	ConflictDuplicate     ConflictKind = "duplicate"
	ConflictIncompatible  ConflictKind = "incompatible"
	ConflictQuotaExceeded ConflictKind = "quota_exceeded"
	ConflictTime          ConflictKind = "time_conflict"
	ConflictResource      ConflictKind = "resource_conflict"
)

// Severity of a conflict, ordered low to critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities, higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

// ConflictDetail describes one conflict across the selection.
type ConflictDetail struct {
	ID             string          `json:"id"`
	Type           ConflictKind    `json:"type"`
	Severity       Severity        `json:"severity"`
	Items          []SelectionItem `json:"items"`
	Message        string          `json:"message"`
	AutoResolvable bool            `json:"autoResolvable"`
}

// ResolutionStrategy is the canned strategy used to resolve a conflict.
type ResolutionStrategy string

const (
	StrategyRemove     ResolutionStrategy = "remove"
	StrategyReplace    ResolutionStrategy = "replace"
	StrategyReschedule ResolutionStrategy = "reschedule"
	StrategyModify     ResolutionStrategy = "modify"
)

// QualityDirection tells whether a resolution improves the stay.
type QualityDirection string

const (
	QualityImprove QualityDirection = "improve"
	QualityNeutral QualityDirection = "neutral"
	QualityDegrade QualityDirection = "degrade"
)

// ResolutionImpact is advisory, for display only.
type ResolutionImpact struct {
	PriceDelta float64          `json:"priceDelta"`
	Quality    QualityDirection `json:"quality"`
	UXDelta    float64          `json:"uxDelta"`
}

// ResolutionAction is one concrete step of a suggestion.
type ResolutionAction struct {
	Action  string   `json:"action"`
	ItemID  string   `json:"itemId"`
	Kind    ItemKind `json:"kind"`
	Details string   `json:"details,omitempty"`
}

// ResolutionSuggestion is a proposed fix for a ConflictDetail.
type ResolutionSuggestion struct {
	ID          string             `json:"id"`
	ConflictID  string             `json:"conflictId"`
	Strategy    ResolutionStrategy `json:"strategy"`
	Description string             `json:"description"`
	Actions     []ResolutionAction `json:"actions"`
	Confidence  float64            `json:"confidence"`
	Impact      ResolutionImpact   `json:"impact"`
}

// ConflictSummary counts conflicts by severity.
type ConflictSummary struct {
	Total          int  `json:"total"`
	Critical       int  `json:"critical"`
	High           int  `json:"high"`
	Medium         int  `json:"medium"`
	Low            int  `json:"low"`
	AutoResolvable bool `json:"autoResolvable"`
}

// ConflictResult is the full conflict report for a selection.
type ConflictResult struct {
	HasConflicts bool                   `json:"hasConflicts"`
	Conflicts    []ConflictDetail       `json:"conflicts"`
	Resolutions  []ResolutionSuggestion `json:"resolutions"`
	Summary      ConflictSummary        `json:"summary"`
}
