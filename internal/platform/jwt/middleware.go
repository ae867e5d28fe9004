// Package jwtmw provides JWT token generation and the gin middleware gating
// protected routes.
package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextEmployeeEmail is the gin context key under which the middleware
// stores the authenticated employee's email.
const ContextEmployeeEmail = "employeeEmail"

// AuthRequired returns a gin middleware that validates the bearer access
// token and rejects the request before any handler logic runs.
// The token is trusted for identity only; it carries no role claims.
func AuthRequired(accessSecret string) gin.HandlerFunc {
	secret := []byte(accessSecret)
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": []string{"Missing bearer token."}})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		email, err := verify(tokenStr, secret)
		if err != nil {
			// Expired, forged and malformed tokens all get the same answer.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": []string{"Invalid token."}})
			return
		}

		c.Set(ContextEmployeeEmail, email)
		c.Next()
	}
}
