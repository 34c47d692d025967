package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"upsell/models"
	"upsell/services/pricing"
)

// snapshot is the file format read by every command.
type snapshot struct {
	models.Selection
	Context  *models.PricingOverrides      `json:"context"`
	Selected models.SelectedCustomizations `json:"selected"`
}

// validate uses the same tags the HTTP binding checks.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

func loadSnapshot(path string) (*snapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	if err := validate.Struct(&snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}

func (s *snapshot) pricingContext() models.PricingContext {
	return s.Context.Apply(pricing.DefaultContext())
}
