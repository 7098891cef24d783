package router

import (
	"net/http"
	"strings"

	"hirehub/internal/repository"
	"hirehub/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthRequired validates the Bearer token and loads the user it names. The
// lookup rejects tokens for users that no longer exist, so a deleted account
// cannot keep using an old token.
func AuthRequired(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		userID, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := repository.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			log.Debug("Token for unknown user rejected", zap.Uint("userID", userID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}
