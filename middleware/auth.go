package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/nithin-912/PayBridge/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AdminAuthMiddleware guards the admin endpoints with a bearer JWT
// signed using JWT_SECRET. Tokens are issued out-of-band; there is no
// login flow in a webhook receiver.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header on %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			utils.LogError("Invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			utils.LogError("Admin token missing admin role")
			c.JSON(http.StatusForbidden, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		c.Set("admin", claims["sub"])
		c.Next()
	}
}
