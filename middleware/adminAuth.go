package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminCookieName is the session cookie issued by the login endpoint.
const AdminCookieName = "admin_token"

// adminCookieSentinel is the fixed cookie value. The cookie is a shared-secret
// sentinel, not a per-session token.
const adminCookieSentinel = "true"

// AdminAuthMiddleware gates the dashboard APIs behind the admin session
// cookie set by the login endpoint.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookieName)
		if err != nil || token != adminCookieSentinel {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Unauthorized admin access",
			})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
