package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brickshare/internal/client"
	apperrors "brickshare/internal/errors"
)

const sessionKey = "session"

// Session returns a Gin middleware that extracts the bearer token from the
// Authorization header and stores it as a client.Session on the context.
// The token is not inspected here: the marketplace API is the authority on
// authentication and rejects requests made with an invalid token. The
// middleware only guarantees that a token is present to forward.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		c.Set(sessionKey, client.Session{Token: parts[1]})
		c.Next()
	}
}

// SessionFrom returns the session stored by the Session middleware.
func SessionFrom(c *gin.Context) (client.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return client.Session{}, false
	}
	session, ok := v.(client.Session)
	return session, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrUnauthorized.Code,
			"message": message,
		},
	})
}
