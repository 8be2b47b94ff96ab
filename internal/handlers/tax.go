package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupeemate/backend/internal/auth"
	"github.com/rupeemate/backend/internal/service"
)

// EstimateTax runs the slab calculator over a monthly income. Section 80C
// fields are accepted and reported back but do not reduce taxable income.
func (h *Handler) EstimateTax(c *gin.Context) {
	var req service.TaxEstimateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.MonthlyIncome < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "monthly_income must be non-negative"})
		return
	}
	if req.EPFPPF < 0 || req.ELSS < 0 || req.LICPremium < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deductions must be non-negative"})
		return
	}

	estimate, err := h.svc.EstimateTax(c.Request.Context(), auth.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}
