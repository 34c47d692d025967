package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Customization endpoints
	GetCatalogHandler      gin.HandlerFunc
	DisabledOptionsHandler gin.HandlerFunc
	CheckOptionHandler     gin.HandlerFunc
	ResolveOptionHandler   gin.HandlerFunc

	// Selection endpoints
	AnalyzeConflictsHandler  gin.HandlerFunc
	AnalyzeDuplicatesHandler gin.HandlerFunc
	PricingHandler           gin.HandlerFunc
	OptimizeHandler          gin.HandlerFunc

	// Quote endpoints
	GetQuoteHandler    gin.HandlerFunc
	DeleteQuoteHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the handler structs.
func NewHandlerBundle(ch *CustomizationHandler, sh *SelectionHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		GetCatalogHandler:        ch.GetCatalogHandler,
		DisabledOptionsHandler:   ch.DisabledOptionsHandler,
		CheckOptionHandler:       ch.CheckOptionHandler,
		ResolveOptionHandler:     ch.ResolveOptionHandler,
		AnalyzeConflictsHandler:  sh.AnalyzeConflictsHandler,
		AnalyzeDuplicatesHandler: sh.AnalyzeDuplicatesHandler,
		PricingHandler:           sh.PricingHandler,
		OptimizeHandler:          sh.OptimizeHandler,
		GetQuoteHandler:          sh.GetQuoteHandler,
		DeleteQuoteHandler:       sh.DeleteQuoteHandler,
		HealthHandler:            health,
	}
}
