package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rupeemate/backend/internal/auth"
	"github.com/rupeemate/backend/internal/model"
)

// GetProfile returns the authenticated user's profile.
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.svc.GetProfile(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Category      string  `json:"category"`
	MonthlyIncome float64 `json:"monthly_income"`
	SavingsGoal   float64 `json:"savings_goal"`
}

// UpdateProfile mutates category, monthly income and savings goal.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category := model.UserCategory(req.Category)
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user category"})
		return
	}
	if req.MonthlyIncome < 0 || req.SavingsGoal < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amounts must be non-negative"})
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), auth.CurrentUser(c), category, req.MonthlyIncome, req.SavingsGoal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetBudget returns the recommended budget split for the user's category.
// ?income= overrides the profile income.
func (h *Handler) GetBudget(c *gin.Context) {
	var override *float64
	if raw := c.Query("income"); raw != "" {
		income, err := strconv.ParseFloat(raw, 64)
		if err != nil || income < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "income must be a non-negative number"})
			return
		}
		override = &income
	}

	rec, err := h.svc.RecommendBudget(c.Request.Context(), auth.CurrentUser(c), override)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
