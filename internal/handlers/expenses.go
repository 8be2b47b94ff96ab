package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rupeemate/backend/internal/auth"
	"github.com/rupeemate/backend/internal/model"
)

type createExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
	Date     string  `json:"date"` // RFC 3339, optional
}

// CreateExpense logs a new expense for the authenticated user.
func (h *Handler) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category := model.ExpenseCategory(req.Category)
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense category"})
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

	expense, err := h.svc.AddExpense(c.Request.Context(), auth.CurrentUser(c), category, req.Amount, req.Note, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// ListExpenses returns the user's expenses, newest first. ?limit= caps the
// result.
func (h *Handler) ListExpenses(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	expenses, err := h.svc.ListExpenses(c.Request.Context(), auth.CurrentUser(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// ExpenseSummary returns total spend and per-category totals.
func (h *Handler) ExpenseSummary(c *gin.Context) {
	summary, err := h.svc.SummarizeExpenses(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// parseLimit reads ?limit=; on a bad value it writes the 400 itself and
// returns ok=false.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return 0, false
	}
	return limit, true
}
