package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loyalty-raffle-backend/internal/features/account/models"
	"loyalty-raffle-backend/internal/features/account/service"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(svc service.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	accounts := router.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:id", h.getAccount)
	}
}

// @Summary Create account
// @Description Registers a loyalty account and awards the welcome bonus
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.AccountCreate true "Account details"
// @Success 201 {object} models.AccountResponse "Created account"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "Username or email already taken"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) createAccount(c *gin.Context) {
	var req models.AccountCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Username and a valid email are required"})
		return
	}

	account, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, account)
}

// @Summary Get account
// @Description Account details with the tier derived from the current balance
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.AccountResponse "Account"
// @Failure 400 {object} models.ErrorResponse "Invalid account ID"
// @Failure 404 {object} models.ErrorResponse "Account not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /accounts/{id} [get]
func (h *AccountHandler) getAccount(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Account ID must be a UUID"})
		return
	}

	account, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
		return
	}

	c.JSON(http.StatusOK, account)
}
