package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly gates the back-office routes on the configured credential pair.
// The repositories and services below it perform no gating of their own.
func AdminOnly(email, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		gotEmail := c.GetHeader("X-Admin-Email")
		gotPassword := c.GetHeader("X-Admin-Password")

		emailOK := subtle.ConstantTimeCompare([]byte(gotEmail), []byte(email)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(gotPassword), []byte(password)) == 1
		if !emailOK || !passwordOK {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}
