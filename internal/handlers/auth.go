package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/garageservices/garage-backend/internal/services"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user, err := auth.Register(input)
		if err != nil {
			var verr services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(400, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(500, gin.H{"error": "Registration failed: " + err.Error()})
			return
		}

		c.JSON(201, gin.H{
			"message": "Account created successfully! Please login.",
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"fullName": user.FullName,
				"email":    user.Email,
				"phone":    user.Phone,
			},
		})
	}
}

func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		token, user, err := auth.Login(input.Username, input.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(401, gin.H{"error": "Invalid username or password"})
				return
			}
			var verr services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(400, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(500, gin.H{"error": "Login failed: " + err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"token": token,
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"fullName": user.FullName,
			},
		})
	}
}
