package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/garageservices/garage-backend/pkg/utils"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func identify(c *gin.Context, secret string) bool {
	tokenString := bearerToken(c)
	if tokenString == "" {
		return false
	}

	token, err := utils.ValidateToken(tokenString, secret)
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return false
	}

	c.Set("userId", uint(id))
	return true
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identify(c, secret) {
			c.JSON(401, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthOptional sets the user identity when a valid token is present and
// lets the request through either way. Guest bookings ride on this.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identify(c, secret)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, or nil for guests.
func CurrentUserID(c *gin.Context) *uint {
	value, exists := c.Get("userId")
	if !exists {
		return nil
	}
	id, ok := value.(uint)
	if !ok {
		return nil
	}
	return &id
}
