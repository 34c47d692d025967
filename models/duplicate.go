package models

// MergeStrategy says how a duplicate group should be collapsed.
type MergeStrategy string

const (
	MergeKeepLast MergeStrategy = "keep_last"
	MergeCombine  MergeStrategy = "merge"
	MergeKeepBest MergeStrategy = "keep_best"
)

// DuplicateGroup is a set of items considered duplicates of each other.
type DuplicateGroup struct {
	ID            string          `json:"id"`
	Kind          ItemKind        `json:"kind"`
	Items         []SelectionItem `json:"items"`
	Similarity    float64         `json:"similarity"`
	MergeStrategy MergeStrategy   `json:"mergeStrategy"`
	Reason        string          `json:"reason"`
}

// SimilarItem is a pair of items that look alike without being exact duplicates.
type SimilarItem struct {
	First      SelectionItem `json:"first"`
	Second     SelectionItem `json:"second"`
	Similarity float64       `json:"similarity"`
	Reasons    []string      `json:"reasons"`
}

// DuplicateAction is the recommended action for a duplicate group.
type DuplicateAction string

const (
	ActionRemoveDuplicates DuplicateAction = "remove_duplicates"
	ActionMergeQuantities  DuplicateAction = "merge_quantities"
	ActionKeepBest         DuplicateAction = "keep_best"
)

// DuplicateRecommendation is an advisory action for one group.
type DuplicateRecommendation struct {
	GroupID       string          `json:"groupId"`
	Action        DuplicateAction `json:"action"`
	KeepItemID    string          `json:"keepItemId"`
	RemoveItemIDs []string        `json:"removeItemIds"`
	MergedUnits   int             `json:"mergedUnits,omitempty"`
	Confidence    float64         `json:"confidence"`
	PriceImpact   float64         `json:"priceImpact"`
	Description   string          `json:"description"`
}

// DuplicateAnalysis is the output of the duplicate detector.
type DuplicateAnalysis struct {
	HasDuplicates    bool                      `json:"hasDuplicates"`
	Groups           []DuplicateGroup          `json:"groups"`
	SimilarItems     []SimilarItem             `json:"similarItems"`
	Recommendations  []DuplicateRecommendation `json:"recommendations"`
	PotentialSavings float64                   `json:"potentialSavings"`
}
