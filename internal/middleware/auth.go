package middleware

import (
	"net/http"
	"strings"

	"boardlink/internal/auth"
	"boardlink/internal/models"

	"github.com/gin-gonic/gin"
)

const ActorKey = "actor"

// RequireAuth resolves the bearer token into an actor and aborts with 401
// on any failure. The failure reason is not exposed to the caller.
func RequireAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		user, err := svc.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.Set(ActorKey, user)
		c.Next()
	}
}

// Actor returns the authenticated user set by RequireAuth.
func Actor(c *gin.Context) *models.User {
	return c.MustGet(ActorKey).(*models.User)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
