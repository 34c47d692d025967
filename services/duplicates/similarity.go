package duplicates

import (
	"math"
	"sort"
	"strings"

	"upsell/models"
)

// Weights of the similarity components.
const (
	extraNameWeight = 0.7
	extraTypeWeight = 0.3
	roomTypeWeight  = 0.6
	roomAttrWeight  = 0.4

	comparablePriceTolerance = 0.2
)

// ExtraSimilarity scores two extras on name tokens and type.
func ExtraSimilarity(a, b models.SelectedExtra) float64 {
	score := extraNameWeight * wordOverlap(a.Name, b.Name)
	if a.Type == b.Type {
		score += extraTypeWeight
	}
	return score
}

// RoomSimilarity scores two rooms on room type tokens and attributes.
func RoomSimilarity(a, b models.SelectedRoom) float64 {
	return roomTypeWeight*wordOverlap(a.RoomType, b.RoomType) + roomAttrWeight*setOverlap(lowerAll(a.Attributes), lowerAll(b.Attributes))
}

// wordOverlap is the share of common lowercase tokens relative to the longer name.
func wordOverlap(a, b string) float64 {
	return setOverlap(strings.Fields(strings.ToLower(a)), strings.Fields(strings.ToLower(b)))
}

func setOverlap(a, b []string) float64 {
	setA, setB := toSet(a), toSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	common := 0
	for k := range setA {
		if setB[k] {
			common++
		}
	}
	return float64(common) / math.Max(float64(len(setA)), float64(len(setB)))
}

func sharedWords(a, b []string) []string {
	setB := toSet(b)
	var out []string
	for k := range toSet(a) {
		if setB[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func comparablePrice(a, b float64) bool {
	high := math.Max(a, b)
	if high <= 0 {
		return false
	}
	return math.Abs(a-b) <= comparablePriceTolerance*high
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if w != "" {
			set[w] = true
		}
	}
	return set
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(strings.TrimSpace(w))
	}
	return out
}
