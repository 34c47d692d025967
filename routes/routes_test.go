package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	quotesRepo "upsell/database/repository/quotes"
	"upsell/handlers"
	"upsell/models"
	"upsell/services/compatibility"
	"upsell/services/pricing"
	"upsell/services/upsell"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := upsell.NewDefaultUpsellService(compatibility.NewDefaultEngine(), quotesRepo.NewMemoryQuoteRepo(), pricing.DefaultContext(), nil)
	hb := handlers.NewHandlerBundle(handlers.NewCustomizationHandler(svc), handlers.NewSelectionHandler(svc), handlers.HealthHandler)
	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newRouter(), http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestCatalog(t *testing.T) {
	w := do(t, newRouter(), http.MethodGet, "/api/customizations/catalog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var catalog models.Catalog
	if err := json.Unmarshal(w.Body.Bytes(), &catalog); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(catalog.Categories) == 0 {
		t.Error("empty catalog")
	}
}

func TestCustomizationEndpoints(t *testing.T) {
	r := newRouter()
	selected := map[string]interface{}{
		"location": map[string]interface{}{"id": "high-floor", "label": "High Floor", "price": 35},
	}

	tests := []struct {
		name       string
		path       string
		body       interface{}
		wantStatus int
		check      func(t *testing.T, body map[string]json.RawMessage)
	}{
		{
			name:       "disabled options",
			path:       "/api/customizations/disabled",
			body:       gin.H{"selected": selected},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]json.RawMessage) {
				var disabled models.DisabledOptions
				json.Unmarshal(body["disabled"], &disabled)
				if !disabled["low-floor"].Disabled {
					t.Errorf("low-floor should be disabled: %s", body["disabled"])
				}
			},
		},
		{
			name:       "check reports conflict",
			path:       "/api/customizations/check",
			body:       gin.H{"optionId": "garden-view", "category": "view", "selected": selected},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]json.RawMessage) {
				var conflict models.ConflictResolution
				if err := json.Unmarshal(body["conflict"], &conflict); err != nil {
					t.Fatalf("decode conflict: %v", err)
				}
				if conflict.CurrentOption.ID != "high-floor" {
					t.Errorf("unexpected conflict %+v", conflict)
				}
			},
		},
		{
			name:       "check without conflict returns null",
			path:       "/api/customizations/check",
			body:       gin.H{"optionId": "king-bed", "category": "bedType", "selected": selected},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]json.RawMessage) {
				if string(body["conflict"]) != "null" {
					t.Errorf("conflict = %s, want null", body["conflict"])
				}
			},
		},
		{
			name:       "resolve applies option",
			path:       "/api/customizations/resolve",
			body:       gin.H{"optionId": "garden-view", "category": "view", "selected": selected, "removeConflicting": true},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]json.RawMessage) {
				var next models.SelectedCustomizations
				json.Unmarshal(body["selected"], &next)
				if _, ok := next["location"]; ok || next["view"].ID != "garden-view" {
					t.Errorf("unexpected selection %+v", next)
				}
			},
		},
		{
			name:       "missing option id",
			path:       "/api/customizations/check",
			body:       gin.H{"category": "view"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown option",
			path:       "/api/customizations/check",
			body:       gin.H{"optionId": "hot-tub", "category": "features"},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.check == nil {
				return
			}
			var body map[string]json.RawMessage
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			tt.check(t, body)
		})
	}
}

func TestSelectionEndpoints(t *testing.T) {
	r := newRouter()
	selection := gin.H{
		"rooms": []gin.H{
			{"id": "r1", "roomType": "Deluxe", "price": 200, "checkIn": "2025-06-01", "checkOut": "2025-06-04"},
			{"id": "r2", "roomType": "Suite", "price": 300, "checkIn": "2025-06-03", "checkOut": "2025-06-05"},
		},
		"extras": []gin.H{
			{"id": "e1", "name": "Spa Massage", "price": 80, "units": 1, "type": "service"},
		},
	}

	w := do(t, r, http.MethodPost, "/api/selections/conflicts", selection)
	if w.Code != http.StatusOK {
		t.Fatalf("conflicts status = %d", w.Code)
	}
	var conflicts models.ConflictResult
	json.Unmarshal(w.Body.Bytes(), &conflicts)
	if conflicts.Summary.Critical != 1 {
		t.Errorf("expected one critical date conflict, got %+v", conflicts.Summary)
	}

	w = do(t, r, http.MethodPost, "/api/selections/duplicates", selection)
	if w.Code != http.StatusOK {
		t.Fatalf("duplicates status = %d", w.Code)
	}

	priced := gin.H{"rooms": selection["rooms"], "extras": selection["extras"], "context": gin.H{"seasonalMultiplier": 1, "groupSize": 1, "advanceBookingDays": 14}}
	w = do(t, r, http.MethodPost, "/api/selections/pricing", priced)
	if w.Code != http.StatusOK {
		t.Fatalf("pricing status = %d", w.Code)
	}
	var price models.PricingResult
	json.Unmarshal(w.Body.Bytes(), &price)
	if price.FinalTotal != 580 {
		t.Errorf("FinalTotal = %v, want 580", price.FinalTotal)
	}

	w = do(t, r, http.MethodPost, "/api/selections/pricing", gin.H{
		"rooms":   []gin.H{{"id": "r9", "roomType": "Deluxe", "price": 100}},
		"context": gin.H{"loyaltyDiscount": 0.1},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("partial context status = %d", w.Code)
	}
	var partial models.PricingResult
	json.Unmarshal(w.Body.Bytes(), &partial)
	if len(partial.Surcharges) != 0 || partial.FinalTotal != 90 {
		t.Errorf("partial context should keep defaults: final %v, surcharges %+v", partial.FinalTotal, partial.Surcharges)
	}

	w = do(t, r, http.MethodPost, "/api/selections/pricing", gin.H{"rooms": selection["rooms"], "context": gin.H{"loyaltyDiscount": 2}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid loyalty discount: status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/selections/pricing", gin.H{"rooms": []gin.H{{"roomType": "Deluxe"}}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("room without id: status = %d, want 400", w.Code)
	}
}

func TestOptimizeAndFetchQuote(t *testing.T) {
	r := newRouter()
	selection := gin.H{"rooms": []gin.H{{"id": "r1", "roomType": "Deluxe", "price": 200}}}

	w := do(t, r, http.MethodPost, "/api/selections/optimize", selection)
	if w.Code != http.StatusCreated {
		t.Fatalf("optimize status = %d, body %s", w.Code, w.Body.String())
	}
	var quote models.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = do(t, r, http.MethodGet, "/api/quotes/"+quote.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("quote status = %d", w.Code)
	}

	w = do(t, r, http.MethodDelete, "/api/quotes/"+quote.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/quotes/"+quote.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("discarded quote status = %d, want 404", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/quotes/8d3f3c1e-2a4b-4c55-9a1e-3b8c5f0e7d21", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown quote status = %d, want 404", w.Code)
	}
}
