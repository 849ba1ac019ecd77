package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireType rejects requests whose authenticated account is not one of
// the allowed types.
func RequireType(types ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	return func(c *gin.Context) {
		if !allowed[c.GetString("account_type")] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Insufficient privileges",
				},
			})
			return
		}
		c.Next()
	}
}
