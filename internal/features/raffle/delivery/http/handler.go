package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loyalty-raffle-backend/internal/common/middleware"
	ledgerservice "loyalty-raffle-backend/internal/features/ledger/service"
	"loyalty-raffle-backend/internal/features/raffle/models"
	"loyalty-raffle-backend/internal/features/raffle/service"
)

type RaffleHandler struct {
	service    service.RaffleService
	adminToken string
}

func NewRaffleHandler(svc service.RaffleService, adminToken string) *RaffleHandler {
	return &RaffleHandler{
		service:    svc,
		adminToken: adminToken,
	}
}

func (h *RaffleHandler) RegisterRoutes(router *gin.RouterGroup) {
	raffle := router.Group("/raffle")
	{
		raffle.GET("/current", h.getCurrent)
	}

	authed := router.Group("/raffle")
	authed.Use(middleware.RequireAccount())
	{
		authed.GET("/entries", h.getEntries)
		authed.POST("/entries", h.purchaseTickets)
		authed.POST("/winners/:id/claim", h.claimPrize)
	}

	admin := router.Group("/admin/raffle")
	admin.Use(middleware.RequireAdmin(h.adminToken))
	{
		admin.POST("/draw", h.draw)
	}
}

// @Summary Current raffle stats
// @Description Public stats for the running monthly raffle
// @Tags raffle
// @Produce json
// @Success 200 {object} models.CurrentRaffleResponse "Current raffle"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /raffle/current [get]
func (h *RaffleHandler) getCurrent(c *gin.Context) {
	resp, err := h.service.Current(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch raffle info"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get raffle entries
// @Description Caller's tickets, odds and winner status for a period
// @Tags raffle
// @Produce json
// @Security AccountID
// @Param month query string false "Period (YYYY-MM), defaults to current month"
// @Success 200 {object} models.EntriesResponse "Entries"
// @Failure 400 {object} models.ErrorResponse "Invalid period"
// @Failure 401 {object} models.ErrorResponse "Missing account header"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /raffle/entries [get]
func (h *RaffleHandler) getEntries(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	resp, err := h.service.Entries(c.Request.Context(), accountID, c.Query("month"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Month must be in YYYY-MM format"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch raffle entries"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Purchase raffle tickets
// @Description Buys tickets for the current period with points (1-10 per call)
// @Tags raffle
// @Accept json
// @Produce json
// @Security AccountID
// @Param request body models.PurchaseRequest true "Ticket count"
// @Success 200 {object} models.PurchaseResponse "Purchase result"
// @Failure 400 {object} models.ErrorResponse "Invalid count or insufficient points"
// @Failure 401 {object} models.ErrorResponse "Missing account header"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /raffle/entries [post]
func (h *RaffleHandler) purchaseTickets(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	req := models.PurchaseRequest{TicketCount: 1}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.PurchaseTickets(c.Request.Context(), accountID, req.TicketCount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTicketCount) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Can purchase 1-10 tickets at a time"})
			return
		}
		if ib, ok := ledgerservice.AsInsufficientBalance(err); ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":    "Insufficient points",
				"required": ib.Required,
				"current":  ib.Current,
				"needed":   ib.Needed(),
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to purchase raffle tickets"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Claim raffle prize
// @Description Winner marks the prize as claimed
// @Tags raffle
// @Produce json
// @Security AccountID
// @Param id path string true "Winner record ID"
// @Success 200 {object} models.RaffleWinner "Claimed winner record"
// @Failure 401 {object} models.ErrorResponse "Missing account header"
// @Failure 409 {object} models.ErrorResponse "Already claimed or not the winner"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /raffle/winners/{id}/claim [post]
func (h *RaffleHandler) claimPrize(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	winner, err := h.service.Claim(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotClaimable) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Prize already claimed or not yours"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim prize"})
		return
	}

	c.JSON(http.StatusOK, winner)
}

// @Summary Draw raffle winner
// @Description Performs the monthly drawing for a period, at most once (admin only)
// @Tags raffle
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body models.DrawRequest true "Period to draw"
// @Success 200 {object} models.DrawResponse "Drawing result"
// @Failure 400 {object} models.ErrorResponse "Invalid period or no entries"
// @Failure 401 {object} models.ErrorResponse "Missing admin token"
// @Failure 409 {object} models.ErrorResponse "Winner already drawn"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/raffle/draw [post]
func (h *RaffleHandler) draw(c *gin.Context) {
	var req models.DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Month is required (YYYY-MM format)"})
		return
	}

	resp, err := h.service.Draw(c.Request.Context(), req.Month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPeriod):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Month must be in YYYY-MM format"})
		case errors.Is(err, service.ErrAlreadyDrawn):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Winner already selected for this month"})
		case errors.Is(err, service.ErrNoEntries):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No raffle entries found for this month"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to conduct raffle drawing"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
