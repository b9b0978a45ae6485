package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garageservices/garage-backend/internal/middleware"
	"github.com/garageservices/garage-backend/internal/store"
)

// GetProfile retrieves the authenticated user's profile
func GetProfile(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.CurrentUserID(c)
		if userID == nil {
			c.JSON(401, gin.H{"error": "Authorization required"})
			return
		}

		user, err := users.GetByID(*userID)
		if err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"id":       user.ID,
			"username": user.Username,
			"fullName": user.FullName,
			"email":    user.Email,
			"phone":    user.Phone,
		})
	}
}
