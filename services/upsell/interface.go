package upsell

import (
	"context"
	"time"

	quotesRepo "upsell/database/repository/quotes"
	"upsell/models"
	"upsell/services/compatibility"

	"go.uber.org/zap"
)

// UpsellService is the host-facing surface over the selection engines.
type UpsellService interface {
	Catalog() models.Catalog
	DisabledOptions(selected models.SelectedCustomizations) (models.DisabledOptions, error)
	CheckOption(optionID, category string, selected models.SelectedCustomizations) (*models.ConflictResolution, error)
	ResolveOption(optionID, category string, selected models.SelectedCustomizations, removeConflicting bool) (models.SelectedCustomizations, error)
	AnalyzeConflicts(selection models.Selection) models.ConflictResult
	AnalyzeDuplicates(selection models.Selection) models.DuplicateAnalysis
	Price(selection models.Selection, overrides *models.PricingOverrides) models.PricingResult
	Optimize(ctx context.Context, selection models.Selection, overrides *models.PricingOverrides) (*models.Quote, error)
	GetQuote(ctx context.Context, quoteID string) (*models.Quote, error)
	DiscardQuote(ctx context.Context, quoteID string) error
}

// DefaultUpsellService implements UpsellService.
type DefaultUpsellService struct {
	Compat         compatibility.CompatibilityEngine
	Optimizer      *Optimizer
	Quotes         quotesRepo.QuoteRepository
	DefaultContext models.PricingContext
	Logger         *zap.Logger
	Now            func() time.Time
}

// NewDefaultUpsellService wires the default engines around the given rule set and quote store.
func NewDefaultUpsellService(compat compatibility.CompatibilityEngine, quotes quotesRepo.QuoteRepository, defaults models.PricingContext, logger *zap.Logger) *DefaultUpsellService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUpsellService{
		Compat:         compat,
		Optimizer:      NewOptimizer(),
		Quotes:         quotes,
		DefaultContext: defaults,
		Logger:         logger,
		Now:            time.Now,
	}
}
