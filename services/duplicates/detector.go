package duplicates

import (
	"fmt"
	"strings"

	"upsell/models"
)

// Thresholds for near-duplicate detection.
const (
	NearDuplicateThreshold = 0.8
	SimilarThreshold       = 0.6
)

// DuplicateDetector scores a selection for exact and near duplicates.
type DuplicateDetector interface {
	AnalyzeDuplicates(rooms []models.SelectedRoom, extras []models.SelectedExtra) models.DuplicateAnalysis
}

// Detector is the stateless DuplicateDetector.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// AnalyzeDuplicates groups exact duplicates, finds near duplicates pairwise
// and recommends how to collapse each group.
func (d *Detector) AnalyzeDuplicates(rooms []models.SelectedRoom, extras []models.SelectedExtra) models.DuplicateAnalysis {
	analysis := models.DuplicateAnalysis{
		Groups:          []models.DuplicateGroup{},
		SimilarItems:    []models.SimilarItem{},
		Recommendations: []models.DuplicateRecommendation{},
	}

	analysis.Groups = append(analysis.Groups, exactRoomGroups(rooms)...)
	analysis.Groups = append(analysis.Groups, exactExtraGroups(extras)...)

	for i := 0; i < len(extras); i++ {
		for j := i + 1; j < len(extras); j++ {
			a, b := extras[i], extras[j]
			if a.Name == b.Name {
				continue
			}
			score := ExtraSimilarity(a, b)
			first, second := models.ExtraItem(a), models.ExtraItem(b)
			if score > NearDuplicateThreshold && score < 1 {
				analysis.Groups = append(analysis.Groups, nearGroup("similar_extra_", models.KindExtra, first, second, score))
			}
			if score > SimilarThreshold && score < 1 {
				analysis.SimilarItems = append(analysis.SimilarItems, models.SimilarItem{
					First:      first,
					Second:     second,
					Similarity: score,
					Reasons:    extraReasons(a, b),
				})
			}
		}
	}

	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i], rooms[j]
			if a.RoomType == b.RoomType {
				continue
			}
			score := RoomSimilarity(a, b)
			first, second := models.RoomItem(a), models.RoomItem(b)
			if score > NearDuplicateThreshold && score < 1 {
				analysis.Groups = append(analysis.Groups, nearGroup("similar_room_", models.KindRoom, first, second, score))
			}
			if score > SimilarThreshold && score < 1 {
				analysis.SimilarItems = append(analysis.SimilarItems, models.SimilarItem{
					First:      first,
					Second:     second,
					Similarity: score,
					Reasons:    roomReasons(a, b),
				})
			}
		}
	}

	for _, group := range analysis.Groups {
		rec := recommend(group)
		analysis.Recommendations = append(analysis.Recommendations, rec)
		if rec.PriceImpact < 0 {
			analysis.PotentialSavings -= rec.PriceImpact
		}
	}
	analysis.PotentialSavings = models.RoundCents(analysis.PotentialSavings)
	analysis.HasDuplicates = len(analysis.Groups) > 0
	return analysis
}

func exactRoomGroups(rooms []models.SelectedRoom) []models.DuplicateGroup {
	byType := make(map[string][]models.SelectionItem)
	var order []string
	for _, room := range rooms {
		if _, seen := byType[room.RoomType]; !seen {
			order = append(order, room.RoomType)
		}
		byType[room.RoomType] = append(byType[room.RoomType], models.RoomItem(room))
	}
	var out []models.DuplicateGroup
	for _, roomType := range order {
		if items := byType[roomType]; len(items) > 1 {
			out = append(out, models.DuplicateGroup{
				ID:            "room_" + slug(roomType),
				Kind:          models.KindRoom,
				Items:         items,
				Similarity:    1,
				MergeStrategy: models.MergeKeepLast,
				Reason:        fmt.Sprintf("%d rooms share the type %s", len(items), roomType),
			})
		}
	}
	return out
}

func exactExtraGroups(extras []models.SelectedExtra) []models.DuplicateGroup {
	byName := make(map[string][]models.SelectionItem)
	var order []string
	for _, extra := range extras {
		if _, seen := byName[extra.Name]; !seen {
			order = append(order, extra.Name)
		}
		byName[extra.Name] = append(byName[extra.Name], models.ExtraItem(extra))
	}
	var out []models.DuplicateGroup
	for _, name := range order {
		if items := byName[name]; len(items) > 1 {
			out = append(out, models.DuplicateGroup{
				ID:            "extra_" + slug(name),
				Kind:          models.KindExtra,
				Items:         items,
				Similarity:    1,
				MergeStrategy: models.MergeCombine,
				Reason:        fmt.Sprintf("%s is selected %d times", name, len(items)),
			})
		}
	}
	return out
}

func nearGroup(prefix string, kind models.ItemKind, a, b models.SelectionItem, score float64) models.DuplicateGroup {
	return models.DuplicateGroup{
		ID:            prefix + a.ID() + "_" + b.ID(),
		Kind:          kind,
		Items:         []models.SelectionItem{a, b},
		Similarity:    score,
		MergeStrategy: models.MergeKeepBest,
		Reason:        fmt.Sprintf("%s and %s are %.0f%% similar", a.Name(), b.Name(), score*100),
	}
}

func extraReasons(a, b models.SelectedExtra) []string {
	var reasons []string
	if shared := sharedWords(strings.Fields(strings.ToLower(a.Name)), strings.Fields(strings.ToLower(b.Name))); len(shared) > 0 {
		reasons = append(reasons, "shared keywords: "+strings.Join(shared, ", "))
	}
	if a.Type == b.Type {
		reasons = append(reasons, "same type: "+string(a.Type))
	}
	if comparablePrice(a.Price, b.Price) {
		reasons = append(reasons, "comparable price")
	}
	return reasons
}

func roomReasons(a, b models.SelectedRoom) []string {
	var reasons []string
	if shared := sharedWords(strings.Fields(strings.ToLower(a.RoomType)), strings.Fields(strings.ToLower(b.RoomType))); len(shared) > 0 {
		reasons = append(reasons, "shared keywords: "+strings.Join(shared, ", "))
	}
	if shared := sharedWords(lowerAll(a.Attributes), lowerAll(b.Attributes)); len(shared) > 0 {
		reasons = append(reasons, "shared attributes: "+strings.Join(shared, ", "))
	}
	if comparablePrice(a.Price, b.Price) {
		reasons = append(reasons, "comparable price")
	}
	return reasons
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
