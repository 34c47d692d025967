package upsell

import (
	"context"
	"errors"
	"testing"
	"time"

	quotesRepo "upsell/database/repository/quotes"
	"upsell/models"
	"upsell/services/compatibility"
	"upsell/services/pricing"
)

func newTestService(t *testing.T) (*DefaultUpsellService, time.Time) {
	t.Helper()
	start := time.Now()
	clock := func() time.Time { return start }

	svc := NewDefaultUpsellService(compatibility.NewDefaultEngine(), quotesRepo.NewMemoryQuoteRepo(), pricing.DefaultContext(), nil)
	svc.Optimizer.Pricing = &pricing.Engine{Now: clock}
	svc.Now = clock
	return svc, start
}

func selectionOf(t *testing.T, ids ...string) models.SelectedCustomizations {
	t.Helper()
	catalog := compatibility.DefaultCatalog()
	selected := models.SelectedCustomizations{}
	for _, id := range ids {
		category, ok := catalog.CategoryOf(id)
		if !ok {
			t.Fatalf("unknown option %s", id)
		}
		opt, _ := catalog.Option(id)
		selected[category] = opt
	}
	return selected
}

func TestCheckOption(t *testing.T) {
	svc, _ := newTestService(t)

	conflict, err := svc.CheckOption("garden-view", compatibility.CategoryView, selectionOf(t, "high-floor"))
	if err != nil {
		t.Fatalf("CheckOption: %v", err)
	}
	if conflict == nil {
		t.Fatal("expected a conflict")
	}
	if conflict.CurrentOption.ID != "high-floor" || conflict.ConflictingOption.ID != "garden-view" {
		t.Errorf("unexpected conflict %+v", conflict)
	}

	conflict, err = svc.CheckOption("king-bed", compatibility.CategoryBedType, selectionOf(t, "high-floor"))
	if err != nil {
		t.Fatalf("CheckOption: %v", err)
	}
	if conflict != nil {
		t.Errorf("expected no conflict, got %+v", conflict)
	}
}

func TestCheckOption_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		option   string
		category string
		selected models.SelectedCustomizations
	}{
		{"unknown option", "hot-tub", compatibility.CategoryFeatures, nil},
		{"wrong category", "king-bed", compatibility.CategoryView, nil},
		{
			name:     "selection outside catalog",
			option:   "king-bed",
			category: compatibility.CategoryBedType,
			selected: models.SelectedCustomizations{compatibility.CategoryView: {ID: "mars-view"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CheckOption(tt.option, tt.category, tt.selected)
			if !IsValidationError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestResolveOption(t *testing.T) {
	svc, _ := newTestService(t)
	selected := selectionOf(t, "high-floor", "king-bed")

	next, err := svc.ResolveOption("garden-view", compatibility.CategoryView, selected, true)
	if err != nil {
		t.Fatalf("ResolveOption: %v", err)
	}
	if _, ok := next[compatibility.CategoryLocation]; ok {
		t.Errorf("high-floor should have been removed: %+v", next)
	}
	if next[compatibility.CategoryView].ID != "garden-view" {
		t.Errorf("garden-view not applied: %+v", next)
	}
	if next[compatibility.CategoryBedType].ID != "king-bed" {
		t.Errorf("unrelated option dropped: %+v", next)
	}
	if selected[compatibility.CategoryLocation].ID != "high-floor" {
		t.Error("input selection was mutated")
	}

	kept, err := svc.ResolveOption("garden-view", compatibility.CategoryView, selected, false)
	if err != nil {
		t.Fatalf("ResolveOption: %v", err)
	}
	if len(kept) != len(selected) {
		t.Errorf("expected selection unchanged without removal, got %+v", kept)
	}
}

func TestDisabledOptions(t *testing.T) {
	svc, _ := newTestService(t)

	disabled, err := svc.DisabledOptions(selectionOf(t, "pet-friendly"))
	if err != nil {
		t.Fatalf("DisabledOptions: %v", err)
	}
	for _, id := range []string{"quiet-zone", "accessible-room"} {
		if !disabled[id].Disabled {
			t.Errorf("%s should be disabled", id)
		}
	}
}

func TestOptimizeStoresQuote(t *testing.T) {
	svc, start := newTestService(t)
	ctx := context.Background()
	selection := models.Selection{
		Rooms: []models.SelectedRoom{{ID: "r1", RoomType: "Deluxe", Price: 200, CheckIn: "2025-06-01", CheckOut: "2025-06-03"}},
	}

	quote, err := svc.Optimize(ctx, selection, nil)
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}
	if quote.ID == "" {
		t.Fatal("quote has no id")
	}
	if !quote.ExpiresAt.Equal(start.Add(pricing.QuoteValidity)) {
		t.Errorf("ExpiresAt = %v, want %v", quote.ExpiresAt, start.Add(pricing.QuoteValidity))
	}
	if quote.Report.Pricing.FinalTotal != 200 {
		t.Errorf("FinalTotal = %v, want 200", quote.Report.Pricing.FinalTotal)
	}

	got, err := svc.GetQuote(ctx, quote.ID)
	if err != nil {
		t.Fatalf("GetQuote: %v", err)
	}
	if got.ID != quote.ID || got.Report.Pricing.FinalTotal != quote.Report.Pricing.FinalTotal {
		t.Errorf("stored quote differs: %+v", got)
	}
}

func TestGetQuote_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	for _, id := range []string{"not-a-uuid", "8d3f3c1e-2a4b-4c55-9a1e-3b8c5f0e7d21"} {
		if _, err := svc.GetQuote(context.Background(), id); !errors.Is(err, ErrQuoteNotFound) {
			t.Errorf("GetQuote(%s) = %v, want ErrQuoteNotFound", id, err)
		}
	}
}

func TestPrice_UsesDefaultContext(t *testing.T) {
	svc, _ := newTestService(t)
	svc.DefaultContext = models.PricingContext{SeasonalMultiplier: 1.5, GroupSize: 1, AdvanceBookingDays: 14}
	selection := models.Selection{Rooms: []models.SelectedRoom{{ID: "r1", RoomType: "Deluxe", Price: 100}}}

	if got := svc.Price(selection, nil); got.FinalTotal != 150 {
		t.Errorf("default context: FinalTotal = %v, want 150", got.FinalTotal)
	}
	one := 1.0
	if got := svc.Price(selection, &models.PricingOverrides{SeasonalMultiplier: &one}); got.FinalTotal != 100 {
		t.Errorf("overridden multiplier: FinalTotal = %v, want 100", got.FinalTotal)
	}
}

func TestPrice_PartialContextKeepsDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	selection := models.Selection{Rooms: []models.SelectedRoom{{ID: "r1", RoomType: "Deluxe", Price: 100}}}
	loyalty := 0.1

	got := svc.Price(selection, &models.PricingOverrides{LoyaltyDiscount: &loyalty})
	for _, s := range got.Surcharges {
		if s.ID == "last_minute" {
			t.Errorf("omitted advanceBookingDays should keep the default, got surcharge %+v", s)
		}
	}
	if got.FinalTotal != 90 {
		t.Errorf("FinalTotal = %v, want 90", got.FinalTotal)
	}
}
