package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Account identity is established upstream (the storefront gateway authenticates the
// shopper and forwards the account ID). This service only checks that the header is
// present and well formed.

const (
	accountIDKey = "account_id"

	// AccountIDHeader carries the authenticated shopper's account ID.
	AccountIDHeader = "X-Account-ID"
)

func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetHeader(AccountIDHeader)
		if accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: X-Account-ID header required"})
			return
		}

		if _, err := uuid.Parse(accountID); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID format"})
			return
		}

		c.Set(accountIDKey, accountID)
		c.Next()
	}
}

func RequireAdmin(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: X-Admin-Token header required"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

// GetAccountID returns the account ID set by RequireAccount.
func GetAccountID(c *gin.Context) string {
	if id, exists := c.Get(accountIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
