package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loyalty-raffle-backend/internal/common/middleware"
	accountmodels "loyalty-raffle-backend/internal/features/account/models"
	accountservice "loyalty-raffle-backend/internal/features/account/service"
	"loyalty-raffle-backend/internal/features/ledger/models"
	"loyalty-raffle-backend/internal/features/ledger/service"
)

type LedgerHandler struct {
	service    service.LedgerService
	adminToken string
}

func NewLedgerHandler(svc service.LedgerService, adminToken string) *LedgerHandler {
	return &LedgerHandler{
		service:    svc,
		adminToken: adminToken,
	}
}

func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	loyalty := router.Group("/loyalty")
	loyalty.Use(middleware.RequireAccount())
	{
		loyalty.GET("/points", h.getPoints)
	}

	admin := router.Group("/loyalty")
	admin.Use(middleware.RequireAdmin(h.adminToken))
	{
		admin.POST("/points", h.awardPoints)
	}
}

type pointsResponse struct {
	CurrentPoints int                        `json:"current_points"`
	Tier          accountmodels.TierInfo     `json:"tier"`
	MonthlyStats  models.MonthlyStats        `json:"monthly_stats"`
	Transactions  []models.LedgerTransaction `json:"transactions"`
	Page          int                        `json:"page"`
	Limit         int                        `json:"limit"`
	HasMore       bool                       `json:"has_more"`
}

// @Summary Get points summary
// @Description Current balance, tier progress, monthly stats and paginated transaction history
// @Tags loyalty
// @Produce json
// @Security AccountID
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param type query string false "Filter by kind" Enums(earn, redeem)
// @Success 200 {object} pointsResponse "Points summary"
// @Failure 401 {object} accountmodels.ErrorResponse "Missing account header"
// @Failure 404 {object} accountmodels.ErrorResponse "Account not found"
// @Failure 500 {object} accountmodels.ErrorResponse "Internal server error"
// @Router /loyalty/points [get]
func (h *LedgerHandler) getPoints(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	kind := c.Query("type")

	if kind != "" && kind != models.KindEarn && kind != models.KindRedeem {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "type must be 'earn' or 'redeem'"})
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), accountID, kind, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty data"})
		return
	}

	c.JSON(http.StatusOK, pointsResponse{
		CurrentPoints: summary.CurrentPoints,
		Tier:          accountservice.TierFor(summary.CurrentPoints),
		MonthlyStats:  summary.MonthlyStats,
		Transactions:  summary.Transactions,
		Page:          page,
		Limit:         limit,
		HasMore:       len(summary.Transactions) == limit,
	})
}

// @Summary Award points manually
// @Description Manual points award for support and campaign use (admin only)
// @Tags loyalty
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body models.AwardRequest true "Award details"
// @Success 200 {object} map[string]interface{} "Awarded transaction"
// @Failure 400 {object} accountmodels.ErrorResponse "Invalid request"
// @Failure 401 {object} accountmodels.ErrorResponse "Missing admin token"
// @Failure 403 {object} accountmodels.ErrorResponse "Self-award not allowed"
// @Failure 404 {object} accountmodels.ErrorResponse "Account not found"
// @Failure 500 {object} accountmodels.ErrorResponse "Internal server error"
// @Router /loyalty/points [post]
func (h *LedgerHandler) awardPoints(c *gin.Context) {
	var req models.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Account ID, points, and action are required"})
		return
	}

	// Admins acting with their own account header cannot credit themselves.
	if caller := c.GetHeader(middleware.AccountIDHeader); caller != "" && caller == req.AccountID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Cannot award points to your own account"})
		return
	}

	description := req.Description
	if description == "" {
		description = "Manual points award by admin"
	}

	txID, err := h.service.Earn(c.Request.Context(), req.AccountID, req.Points, req.Action, description, req.ReferenceID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to award points"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction_id": txID,
		"points":         req.Points,
		"action":         req.Action,
		"account_id":     req.AccountID,
	})
}
