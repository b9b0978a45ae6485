package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/garageservices/garage-backend/internal/services"
)

// CreateFeedback stores customer feedback, fire-and-forget.
func CreateFeedback(feedback *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FeedbackText string `json:"feedbackText" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := feedback.Submit(input.FeedbackText); err != nil {
			var verr services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(400, gin.H{"error": verr.Error()})
				return
			}
		}

		c.JSON(202, gin.H{"message": "Feedback submitted."})
	}
}
