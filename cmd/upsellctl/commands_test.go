package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rulesRepo "upsell/database/repository/rules"
	"upsell/models"
)

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	snapshotFile, jsonOutput, checkOption, checkCategory = "", false, "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const sampleSnapshot = `{
  "rooms": [
    {"id": "r1", "roomType": "Deluxe", "price": 200, "checkIn": "2025-06-01", "checkOut": "2025-06-03"},
    {"id": "r2", "roomType": "Deluxe", "price": 220, "checkIn": "2025-06-10", "checkOut": "2025-06-12"}
  ],
  "extras": [
    {"id": "e1", "name": "Breakfast", "price": 20, "units": 2, "type": "amenity"}
  ],
  "selected": {
    "location": {"id": "high-floor", "label": "High Floor", "price": 35}
  }
}`

func TestAnalyzeJSON(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)
	out, err := run(t, "analyze", "--file", path, "--json")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var report models.OptimizationReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if !report.Duplicates.HasDuplicates {
		t.Error("expected the two Deluxe rooms to be reported as duplicates")
	}
	if report.Pricing.BaseTotal != 460 {
		t.Errorf("BaseTotal = %v, want 460", report.Pricing.BaseTotal)
	}
}

func TestAnalyzeReport(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)
	out, err := run(t, "analyze", "--file", path)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, section := range []string{"Conflicts", "Duplicates", "Pricing", "Recommendations"} {
		if !strings.Contains(out, section) {
			t.Errorf("report missing %s section:\n%s", section, out)
		}
	}
}

func TestPrice(t *testing.T) {
	path := writeSnapshot(t, `{"rooms":[{"id":"r1","roomType":"Suite","price":100}],"context":{"seasonalMultiplier":1.2,"groupSize":1,"advanceBookingDays":14}}`)
	out, err := run(t, "price", "--file", path, "--json")
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	var result models.PricingResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.FinalTotal != 120 {
		t.Errorf("FinalTotal = %v, want 120", result.FinalTotal)
	}
}

func TestCheck(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)

	out, err := run(t, "check", "--file", path, "--option", "low-floor", "--category", "location")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "can be selected") {
		t.Errorf("replacing within a category should be allowed:\n%s", out)
	}

	out, err = run(t, "check", "--file", path, "--option", "garden-view", "--category", "view")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "conflicts with High Floor") {
		t.Errorf("expected conflict with High Floor:\n%s", out)
	}
}

func TestInvalidSnapshot(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"missing file flag", func(t *testing.T) []string { return []string{"analyze"} }},
		{"malformed json", func(t *testing.T) []string { return []string{"analyze", "--file", writeSnapshot(t, "{")} }},
		{"room without id", func(t *testing.T) []string {
			return []string{"price", "--file", writeSnapshot(t, `{"rooms":[{"roomType":"Suite","price":100}]}`)}
		}},
		{"loyalty out of range", func(t *testing.T) []string {
			return []string{"price", "--file", writeSnapshot(t, `{"context":{"loyaltyDiscount":3}}`)}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args(t)...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

type storedRules struct {
	rules  models.CompatibilityRules
	closed bool
}

func (s *storedRules) GetCatalog(ctx context.Context) (models.Catalog, error) {
	return models.Catalog{}, rulesRepo.ErrNoRules
}

func (s *storedRules) GetRules(ctx context.Context) (models.CompatibilityRules, error) {
	return s.rules, nil
}

func (s *storedRules) ReplaceCatalog(ctx context.Context, catalog models.Catalog) error { return nil }

func (s *storedRules) ReplaceRules(ctx context.Context, rules models.CompatibilityRules) error {
	return nil
}

func (s *storedRules) EnsureIndexes(ctx context.Context) error { return nil }

func TestCheck_UsesMongoRulesWhenConfigured(t *testing.T) {
	t.Setenv("RULES_SOURCE", "mongo")
	store := &storedRules{}
	orig := openRulesRepo
	openRulesRepo = func() (rulesRepo.RulesRepository, func(context.Context) error, error) {
		return store, func(context.Context) error { store.closed = true; return nil }, nil
	}
	defer func() { openRulesRepo = orig }()

	path := writeSnapshot(t, sampleSnapshot)
	out, err := run(t, "check", "--file", path, "--option", "garden-view", "--category", "view")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "can be selected") {
		t.Errorf("stored rules without conflicts should allow garden-view:\n%s", out)
	}
	if !store.closed {
		t.Error("expected the rules store to be closed after loading")
	}
}
