package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"loyalty-raffle-backend/internal/common/middleware"
	ledgerservice "loyalty-raffle-backend/internal/features/ledger/service"
	"loyalty-raffle-backend/internal/features/reward/models"
	"loyalty-raffle-backend/internal/features/reward/service"
)

type RewardHandler struct {
	service service.RewardService
}

func NewRewardHandler(svc service.RewardService) *RewardHandler {
	return &RewardHandler{service: svc}
}

func (h *RewardHandler) RegisterRoutes(router *gin.RouterGroup) {
	loyalty := router.Group("/loyalty")
	{
		loyalty.GET("/rewards", h.getCatalog)
	}

	authed := router.Group("/loyalty")
	authed.Use(middleware.RequireAccount())
	{
		authed.POST("/redeem", h.redeem)
		authed.GET("/redemptions", h.getRedemptions)
	}
}

// @Summary Reward catalogue
// @Description Lists redeemable rewards, optionally filtered and annotated with affordability
// @Tags rewards
// @Produce json
// @Param category query string false "Filter by category"
// @Param user_level query string false "Hide rewards above this tier"
// @Success 200 {array} models.RewardWithAffordability "Rewards"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /loyalty/rewards [get]
func (h *RewardHandler) getCatalog(c *gin.Context) {
	accountID := c.GetHeader("X-Account-ID")

	rewards, err := h.service.Catalog(c.Request.Context(), c.Query("category"), c.Query("user_level"), accountID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rewards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// @Summary Redeem a reward
// @Description Debits points and fulfills the reward per its type
// @Tags rewards
// @Accept json
// @Produce json
// @Security AccountID
// @Param request body models.RedeemRequest true "Reward to redeem"
// @Success 200 {object} models.RedeemResponse "Redemption result"
// @Failure 400 {object} models.ErrorResponse "Invalid reward, missing address or insufficient points"
// @Failure 401 {object} models.ErrorResponse "Missing account header"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /loyalty/redeem [post]
func (h *RewardHandler) redeem(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	var req models.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Reward ID is required"})
		return
	}

	resp, err := h.service.Redeem(c.Request.Context(), accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReward):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid reward"})
		case errors.Is(err, service.ErrMissingShippingAddress):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Shipping address required for physical rewards"})
		default:
			if ib, ok := ledgerservice.AsInsufficientBalance(err); ok {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error":    "Insufficient points",
					"required": ib.Required,
					"current":  ib.Current,
					"needed":   ib.Needed(),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem reward"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Redemption history
// @Description Caller's redemptions, newest first
// @Tags rewards
// @Produce json
// @Security AccountID
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.RewardRedemption "Redemptions"
// @Failure 401 {object} models.ErrorResponse "Missing account header"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /loyalty/redemptions [get]
func (h *RewardHandler) getRedemptions(c *gin.Context) {
	accountID := middleware.GetAccountID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	redemptions, err := h.service.Redemptions(c.Request.Context(), accountID, page, limit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redemptions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemptions": redemptions})
}
