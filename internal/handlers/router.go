package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rupeemate/backend/internal/auth"
	"github.com/rupeemate/backend/internal/logger"
	"github.com/rupeemate/backend/internal/service"
	"github.com/rupeemate/backend/internal/store"
)

// Handler bundles the service for the HTTP layer.
type Handler struct {
	svc *service.FinanceService
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(svc *service.FinanceService, jwtSecret []byte) *gin.Engine {
	h := &Handler{svc: svc}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/assistant/health", h.AssistantHealth)

		authed := api.Group("")
		authed.Use(auth.Middleware(jwtSecret))
		{
			authed.GET("/profile", h.GetProfile)
			authed.PUT("/profile", h.UpdateProfile)
			authed.GET("/profile/budget", h.GetBudget)

			authed.POST("/expenses", h.CreateExpense)
			authed.GET("/expenses", h.ListExpenses)
			authed.GET("/expenses/summary", h.ExpenseSummary)

			authed.POST("/investments", h.CreateInvestment)
			authed.GET("/investments", h.ListInvestments)
			authed.GET("/investments/summary", h.InvestmentSummary)

			authed.POST("/chat", h.Chat)
			authed.GET("/chat/history", h.ChatHistory)

			authed.POST("/tax/estimate", h.EstimateTax)
		}
	}

	return router
}

// errorsIsStore reports whether err is one of the store sentinels that
// respondError maps to a specific status.
func errorsIsStore(err error) bool {
	return errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrDuplicate)
}

// respondError maps service/store errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logger.Get().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
