package routes

import (
	"time"

	"upsell/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterCustomizationRoutes registers the per-room compatibility endpoints.
func RegisterCustomizationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customizations")
	{
		api.GET("/catalog", hb.GetCatalogHandler)
		api.POST("/disabled", hb.DisabledOptionsHandler)
		api.POST("/check", hb.CheckOptionHandler)
		api.POST("/resolve", hb.ResolveOptionHandler)
	}
}

// RegisterSelectionRoutes registers the whole-selection analysis endpoints.
func RegisterSelectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/selections")
	{
		api.POST("/conflicts", hb.AnalyzeConflictsHandler)
		api.POST("/duplicates", hb.AnalyzeDuplicatesHandler)
		api.POST("/pricing", hb.PricingHandler)
		api.POST("/optimize", hb.OptimizeHandler)
	}
}

// RegisterQuoteRoutes registers quote lookups.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.GET("/:quoteID", hb.GetQuoteHandler)
		api.DELETE("/:quoteID", hb.DeleteQuoteHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterCustomizationRoutes(r, hb)
	RegisterSelectionRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
}
