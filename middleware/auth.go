package middleware

import (
	"os"
	"strings"

	"github.com/townbook/client-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// OptionalAuth attaches the bearer identity to the request context when a
// token is present. A missing or unparseable token is not rejected; the
// real backend accepts unauthenticated reads and this server mirrors
// that, so handlers fall back to request-supplied user ids.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.Next()
			return
		}

		token := bearerToken[1]
		claims := jwt.MapClaims{}
		secret := os.Getenv("JWT_SECRET")

		var valid bool
		if secret != "" {
			parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			valid = err == nil && parsedToken.Valid
		} else {
			// No secret configured: trust the claims, dev-server style.
			parser := &jwt.Parser{}
			_, _, err := parser.ParseUnverified(token, claims)
			valid = err == nil
		}
		if !valid {
			c.Next()
			return
		}

		userClaims := &utils.UserClaims{}
		if id, ok := claims["userId"].(string); ok {
			userClaims.UserID = id
		}
		if name, ok := claims["name"].(string); ok {
			userClaims.Name = name
		}
		if userClaims.UserID != "" {
			c.Set(string(utils.UserContextKey), userClaims)
		}

		c.Next()
	}
}
