package handlers

import (
	"net/http"

	"upsell/models"
	"upsell/services/upsell"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SelectionHandler serves the whole-selection analysis and quote endpoints.
type SelectionHandler struct {
	Svc upsell.UpsellService
}

func NewSelectionHandler(svc upsell.UpsellService) *SelectionHandler {
	return &SelectionHandler{Svc: svc}
}

type selectionRequest struct {
	models.Selection
	Context *models.PricingOverrides `json:"context"`
}

func (h *SelectionHandler) bind(c *gin.Context) (selectionRequest, bool) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return req, false
	}
	return req, true
}

func (h *SelectionHandler) AnalyzeConflictsHandler(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Svc.AnalyzeConflicts(req.Selection))
}

func (h *SelectionHandler) AnalyzeDuplicatesHandler(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Svc.AnalyzeDuplicates(req.Selection))
}

func (h *SelectionHandler) PricingHandler(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Svc.Price(req.Selection, req.Context))
}

// OptimizeHandler runs every analysis and returns the stored quote.
func (h *SelectionHandler) OptimizeHandler(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	quote, err := h.Svc.Optimize(c.Request.Context(), req.Selection, req.Context)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Selection optimized",
		zap.String("quoteId", quote.ID),
		zap.Int("rooms", len(req.Rooms)),
		zap.Int("extras", len(req.Extras)),
	)
	c.JSON(http.StatusCreated, quote)
}

func (h *SelectionHandler) GetQuoteHandler(c *gin.Context) {
	quote, err := h.Svc.GetQuote(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *SelectionHandler) DeleteQuoteHandler(c *gin.Context) {
	if err := h.Svc.DiscardQuote(c.Request.Context(), c.Param("quoteID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
