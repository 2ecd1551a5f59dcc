package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/utils"
)

// SessionTokenMiddleware verifies the signed wizard session token and
// checks it was issued for the session named in the route. A wizard
// session can only be driven by the client that created it.
func SessionTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		sessionID, err := utils.ValidateSessionToken(token)
		if err != nil {
			zap.L().Warn("invalid session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session token"})
			return
		}

		if routeID := c.Param("sessionID"); routeID != "" && routeID != sessionID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "session token does not match session"})
			return
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
