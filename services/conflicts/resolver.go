package conflicts

import (
	"fmt"
	"sort"
	"strings"

	"upsell/models"
)

// AnalyzeConflicts runs the room, extra and cross-category checks and ranks
// the suggested resolutions by confidence.
func (r *Resolver) AnalyzeConflicts(rooms []models.SelectedRoom, extras []models.SelectedExtra) models.ConflictResult {
	var found []models.ConflictDetail
	found = append(found, r.roomConflicts(rooms)...)
	found = append(found, r.extraConflicts(extras)...)
	found = append(found, r.crossCategoryConflicts(rooms, extras)...)

	result := models.ConflictResult{
		HasConflicts: len(found) > 0,
		Conflicts:    found,
		Resolutions:  []models.ResolutionSuggestion{},
		Summary:      summarize(found),
	}
	if result.Conflicts == nil {
		result.Conflicts = []models.ConflictDetail{}
	}

	for _, c := range found {
		result.Resolutions = append(result.Resolutions, r.GenerateResolutions(c, rooms, extras)...)
	}
	sort.SliceStable(result.Resolutions, func(i, j int) bool {
		return result.Resolutions[i].Confidence > result.Resolutions[j].Confidence
	})
	return result
}

func (r *Resolver) roomConflicts(rooms []models.SelectedRoom) []models.ConflictDetail {
	var out []models.ConflictDetail

	byType := make(map[string][]models.SelectedRoom)
	var order []string
	for _, room := range rooms {
		if _, seen := byType[room.RoomType]; !seen {
			order = append(order, room.RoomType)
		}
		byType[room.RoomType] = append(byType[room.RoomType], room)
	}
	for _, roomType := range order {
		group := byType[roomType]
		if len(group) < 2 {
			continue
		}
		items := make([]models.SelectionItem, 0, len(group))
		for _, room := range group {
			items = append(items, models.RoomItem(room))
		}
		out = append(out, models.ConflictDetail{
			ID:             "duplicate_room_" + slug(roomType),
			Type:           models.ConflictDuplicate,
			Severity:       models.SeverityHigh,
			Items:          items,
			Message:        fmt.Sprintf("%d rooms of type %s are selected", len(group), roomType),
			AutoResolvable: true,
		})
	}

	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if !StaysOverlap(rooms[i], rooms[j]) {
				continue
			}
			out = append(out, models.ConflictDetail{
				ID:       fmt.Sprintf("date_conflict_%s_%s", rooms[i].ID, rooms[j].ID),
				Type:     models.ConflictTime,
				Severity: models.SeverityCritical,
				Items:    []models.SelectionItem{models.RoomItem(rooms[i]), models.RoomItem(rooms[j])},
				Message: fmt.Sprintf("%s (%s to %s) overlaps %s (%s to %s)",
					rooms[i].RoomType, rooms[i].CheckIn, rooms[i].CheckOut,
					rooms[j].RoomType, rooms[j].CheckIn, rooms[j].CheckOut),
				AutoResolvable: false,
			})
		}
	}

	if len(rooms) > r.maxRooms {
		overflow := rooms[r.maxRooms:]
		items := make([]models.SelectionItem, 0, len(overflow))
		for _, room := range overflow {
			items = append(items, models.RoomItem(room))
		}
		out = append(out, models.ConflictDetail{
			ID:             "room_quota_exceeded",
			Type:           models.ConflictQuotaExceeded,
			Severity:       models.SeverityCritical,
			Items:          items,
			Message:        fmt.Sprintf("%d rooms selected, at most %d are allowed per reservation", len(rooms), r.maxRooms),
			AutoResolvable: false,
		})
	}
	return out
}

// StaysOverlap reports whether two rooms' stays intersect. Both ends are
// inclusive and rooms with unparseable dates never overlap. A room never
// overlaps itself.
func StaysOverlap(a, b models.SelectedRoom) bool {
	if a.ID != "" && a.ID == b.ID {
		return false
	}
	start1, end1, ok1 := a.Stay()
	start2, end2, ok2 := b.Stay()
	if !ok1 || !ok2 {
		return false
	}
	return !start1.After(end2) && !start2.After(end1)
}

func (r *Resolver) extraConflicts(extras []models.SelectedExtra) []models.ConflictDetail {
	var out []models.ConflictDetail

	for _, pair := range r.incompatible {
		first, ok1 := findExtra(extras, pair.First)
		second, ok2 := findExtra(extras, pair.Second)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, models.ConflictDetail{
			ID:             fmt.Sprintf("incompatible_%s_%s", slug(pair.First), slug(pair.Second)),
			Type:           models.ConflictIncompatible,
			Severity:       models.SeverityMedium,
			Items:          []models.SelectionItem{models.ExtraItem(first), models.ExtraItem(second)},
			Message:        pair.Reason,
			AutoResolvable: true,
		})
	}

	byDate := make(map[string][]models.SelectedExtra)
	for _, extra := range extras {
		if date, ok := extra.SingleServiceDate(); ok {
			byDate[date] = append(byDate[date], extra)
		}
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		group := byDate[date]
		if len(group) <= 2 {
			continue
		}
		intensive := 0
		for _, extra := range group {
			if r.isTimeIntensive(extra.Name) {
				intensive++
			}
		}
		if intensive <= 1 {
			continue
		}
		items := make([]models.SelectionItem, 0, len(group))
		for _, extra := range group {
			items = append(items, models.ExtraItem(extra))
		}
		out = append(out, models.ConflictDetail{
			ID:             "service_overload_" + date,
			Type:           models.ConflictTime,
			Severity:       models.SeverityMedium,
			Items:          items,
			Message:        fmt.Sprintf("%d services on %s, %d of them time-intensive", len(group), date, intensive),
			AutoResolvable: true,
		})
	}
	return out
}

func (r *Resolver) crossCategoryConflicts(rooms []models.SelectedRoom, extras []models.SelectedExtra) []models.ConflictDetail {
	if len(rooms) != 1 || !strings.Contains(rooms[0].RoomType, "Single") {
		return nil
	}
	room := rooms[0]
	items := []models.SelectionItem{models.RoomItem(room)}
	for _, extra := range extras {
		if strings.Contains(extra.Name, "Group") || extra.Units > 4 {
			items = append(items, models.ExtraItem(extra))
		}
	}
	if len(items) == 1 {
		return nil
	}
	return []models.ConflictDetail{{
		ID:             "capacity_mismatch_" + room.ID,
		Type:           models.ConflictResource,
		Severity:       models.SeverityLow,
		Items:          items,
		Message:        fmt.Sprintf("%s may not accommodate the group-sized extras selected", room.RoomType),
		AutoResolvable: true,
	}}
}

func (r *Resolver) isTimeIntensive(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range r.timeIntensive {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func findExtra(extras []models.SelectedExtra, name string) (models.SelectedExtra, bool) {
	for _, extra := range extras {
		if strings.EqualFold(extra.Name, name) {
			return extra, true
		}
	}
	return models.SelectedExtra{}, false
}

func summarize(found []models.ConflictDetail) models.ConflictSummary {
	summary := models.ConflictSummary{Total: len(found), AutoResolvable: len(found) > 0}
	for _, c := range found {
		switch c.Severity {
		case models.SeverityCritical:
			summary.Critical++
		case models.SeverityHigh:
			summary.High++
		case models.SeverityMedium:
			summary.Medium++
		case models.SeverityLow:
			summary.Low++
		}
		if !c.AutoResolvable {
			summary.AutoResolvable = false
		}
	}
	return summary
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
