package upsell

import (
	"context"
	"errors"
	"fmt"

	quotesRepo "upsell/database/repository/quotes"
	"upsell/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultUpsellService) Catalog() models.Catalog {
	return s.Compat.Catalog()
}

func (s *DefaultUpsellService) DisabledOptions(selected models.SelectedCustomizations) (models.DisabledOptions, error) {
	if err := s.validate(selected); err != nil {
		return nil, err
	}
	return s.Compat.EvaluateDisabledOptions(selected), nil
}

// CheckOption reports the first conflict selecting optionID would cause, or nil.
func (s *DefaultUpsellService) CheckOption(optionID, category string, selected models.SelectedCustomizations) (*models.ConflictResolution, error) {
	if _, err := s.option(optionID, category); err != nil {
		return nil, err
	}
	if err := s.validate(selected); err != nil {
		return nil, err
	}
	return s.Compat.CheckForConflicts(optionID, category, selected, s.Compat.Catalog()), nil
}

// ResolveOption drops conflicting options and, when removeConflicting is set,
// commits the new option to its category.
func (s *DefaultUpsellService) ResolveOption(optionID, category string, selected models.SelectedCustomizations, removeConflicting bool) (models.SelectedCustomizations, error) {
	option, err := s.option(optionID, category)
	if err != nil {
		return nil, err
	}
	if err := s.validate(selected); err != nil {
		return nil, err
	}
	resolved := s.Compat.ResolveConflicts(optionID, category, selected, removeConflicting)
	if !removeConflicting {
		return resolved, nil
	}
	next := s.Compat.ApplySelection(option, category, resolved)
	s.Logger.Debug("Customization applied",
		zap.String("optionId", optionID),
		zap.String("category", category),
		zap.Int("removed", len(selected)-len(resolved)),
	)
	return next, nil
}

func (s *DefaultUpsellService) AnalyzeConflicts(selection models.Selection) models.ConflictResult {
	return s.Optimizer.Conflicts.AnalyzeConflicts(selection.Rooms, selection.Extras)
}

func (s *DefaultUpsellService) AnalyzeDuplicates(selection models.Selection) models.DuplicateAnalysis {
	return s.Optimizer.Duplicates.AnalyzeDuplicates(selection.Rooms, selection.Extras)
}

func (s *DefaultUpsellService) Price(selection models.Selection, overrides *models.PricingOverrides) models.PricingResult {
	return s.Optimizer.Pricing.CalculateOptimizedPricing(selection.Rooms, selection.Extras, overrides.Apply(s.DefaultContext))
}

// Optimize runs the full analysis and stores the result as a quote valid
// until the pricing expires.
func (s *DefaultUpsellService) Optimize(ctx context.Context, selection models.Selection, overrides *models.PricingOverrides) (*models.Quote, error) {
	report := s.Optimizer.Optimize(selection.Rooms, selection.Extras, overrides.Apply(s.DefaultContext))
	quote := models.Quote{
		ID:        uuid.New().String(),
		Report:    report,
		CreatedAt: s.Now(),
		ExpiresAt: report.Pricing.ValidUntil,
	}
	if err := s.Quotes.Save(ctx, quote); err != nil {
		s.Logger.Error("Failed to store quote", zap.String("quoteId", quote.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}
	s.Logger.Info("Quote created",
		zap.String("quoteId", quote.ID),
		zap.Int("conflicts", report.Conflicts.Summary.Total),
		zap.Int("duplicateGroups", len(report.Duplicates.Groups)),
		zap.Float64("finalTotal", report.Pricing.FinalTotal),
	)
	return &quote, nil
}

func (s *DefaultUpsellService) GetQuote(ctx context.Context, quoteID string) (*models.Quote, error) {
	if _, err := uuid.Parse(quoteID); err != nil {
		return nil, ErrQuoteNotFound
	}
	quote, err := s.Quotes.Get(ctx, quoteID)
	if errors.Is(err, quotesRepo.ErrNotFound) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quote %s: %w", quoteID, err)
	}
	return quote, nil
}

// DiscardQuote drops a quote before it expires. Unknown ids are not an error.
func (s *DefaultUpsellService) DiscardQuote(ctx context.Context, quoteID string) error {
	if _, err := uuid.Parse(quoteID); err != nil {
		return ErrQuoteNotFound
	}
	if err := s.Quotes.Delete(ctx, quoteID); err != nil {
		return fmt.Errorf("failed to discard quote %s: %w", quoteID, err)
	}
	s.Logger.Info("Quote discarded", zap.String("quoteId", quoteID))
	return nil
}

func (s *DefaultUpsellService) validate(selected models.SelectedCustomizations) error {
	if err := s.Compat.Catalog().ValidateSelection(selected); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

// option looks the requested option up in the catalog and checks its category.
func (s *DefaultUpsellService) option(optionID, category string) (models.CustomizationOption, error) {
	catalog := s.Compat.Catalog()
	opt, ok := catalog.Option(optionID)
	if !ok {
		return models.CustomizationOption{}, NewValidationError(fmt.Sprintf("unknown option %q", optionID))
	}
	if owner, _ := catalog.CategoryOf(optionID); owner != category {
		return models.CustomizationOption{}, NewValidationError(fmt.Sprintf("option %q does not belong to category %q", optionID, category))
	}
	return opt, nil
}
