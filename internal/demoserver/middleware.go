package demoserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyUser = "currentUser"

// authMiddleware validates the bearer token and attaches the account
// to the request context.
func (s *Server) authMiddleware(c *gin.Context) {
	tok := bearerToken(c)
	if tok == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
		return
	}

	s.mu.RLock()
	_, revoked := s.revoked[tok]
	s.mu.RUnlock()

	if revoked {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token revoked"})
		return
	}

	userID, err := s.tokens.Parse(tok)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
		return
	}

	s.mu.RLock()
	user, found := s.findUserByID(userID)
	s.mu.RUnlock()

	if !found {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unknown account"})
		return
	}

	c.Set(contextKeyUser, user)
	c.Next()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
