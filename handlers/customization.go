package handlers

import (
	"net/http"

	"upsell/models"
	"upsell/services/upsell"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomizationHandler serves the per-room compatibility endpoints.
type CustomizationHandler struct {
	Svc upsell.UpsellService
}

func NewCustomizationHandler(svc upsell.UpsellService) *CustomizationHandler {
	return &CustomizationHandler{Svc: svc}
}

type selectedRequest struct {
	Selected models.SelectedCustomizations `json:"selected"`
}

type optionRequest struct {
	OptionID          string                        `json:"optionId" binding:"required"`
	Category          string                        `json:"category" binding:"required"`
	Selected          models.SelectedCustomizations `json:"selected"`
	RemoveConflicting bool                          `json:"removeConflicting"`
}

// GetCatalogHandler returns the customization catalog.
func (h *CustomizationHandler) GetCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Catalog())
}

// DisabledOptionsHandler returns the options disabled by the current selection.
func (h *CustomizationHandler) DisabledOptionsHandler(c *gin.Context) {
	var req selectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	disabled, err := h.Svc.DisabledOptions(req.Selected)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disabled": disabled})
}

// CheckOptionHandler reports whether selecting an option would conflict.
func (h *CustomizationHandler) CheckOptionHandler(c *gin.Context) {
	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	conflict, err := h.Svc.CheckOption(req.OptionID, req.Category, req.Selected)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflict": conflict})
}

// ResolveOptionHandler removes conflicting options and applies the new one.
func (h *CustomizationHandler) ResolveOptionHandler(c *gin.Context) {
	var req optionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	selected, err := h.Svc.ResolveOption(req.OptionID, req.Category, req.Selected, req.RemoveConflicting)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Debug("Customization resolved",
		zap.String("optionId", req.OptionID),
		zap.Bool("removeConflicting", req.RemoveConflicting),
	)
	c.JSON(http.StatusOK, gin.H{"selected": selected})
}
