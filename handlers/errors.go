package handlers

import (
	"errors"
	"net/http"

	"upsell/services/upsell"
	"upsell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var ue *upsell.UpsellError
	switch {
	case errors.As(err, &ue):
		utils.JSONError(c, http.StatusBadRequest, ue.Code, ue.Message, "")
	case errors.Is(err, upsell.ErrQuoteNotFound):
		utils.JSONError(c, http.StatusNotFound, "quoteNotFound", err.Error(), "")
	default:
		getLogger(c).Error("Request failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{
			Error:   "internalError",
			Message: "Internal Server Error",
		})
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalidRequest", "invalid input", err.Error())
}
