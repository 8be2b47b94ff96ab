package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rupeemate/backend/internal/auth"
	"github.com/rupeemate/backend/internal/model"
)

type createInvestmentRequest struct {
	Type    string  `json:"type"`
	Amount  float64 `json:"amount"`
	Returns float64 `json:"returns"`
	Date    string  `json:"date"` // RFC 3339, optional
}

// CreateInvestment logs a new investment. Returns may be negative.
func (h *Handler) CreateInvestment(c *gin.Context) {
	var req createInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	invType := model.InvestmentType(req.Type)
	if !invType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid investment type"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than 0"})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339"})
			return
		}
		date = parsed
	}

	investment, err := h.svc.AddInvestment(c.Request.Context(), auth.CurrentUser(c), invType, req.Amount, req.Returns, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, investment)
}

// ListInvestments returns the user's investments, newest first.
func (h *Handler) ListInvestments(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	investments, err := h.svc.ListInvestments(c.Request.Context(), auth.CurrentUser(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// InvestmentSummary returns portfolio totals, ROI and per-type rows.
func (h *Handler) InvestmentSummary(c *gin.Context) {
	summary, err := h.svc.SummarizeInvestments(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
