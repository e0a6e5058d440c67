package middleware

import (
	"errors"
	"net/http"
	"strings"

	"winecellar/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the opaque token in the Authorization header
// to a user via the credential gate. The header carries the bare token;
// a "Bearer " prefix is tolerated and stripped.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		user, err := authService.Resolve(c.Request.Context(), token)
		if err != nil {
			// A token that resolves to nothing is the caller's problem;
			// a storage failure during the lookup is ours.
			if errors.Is(err, service.ErrNoSession) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "no such session"})
			} else {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
			}
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set("userID", user.ID)
		c.Set("currentUser", user)

		c.Next()
	}
}

// RequireSubject rejects requests whose authenticated identity differs
// from the user id in the named path parameter. Runs after
// AuthMiddleware; a mismatch is 403 regardless of whether the addressed
// resource exists.
func RequireSubject(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		if c.Param(param) != userID.(string) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
