package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/garageservices/garage-backend/internal/services"
)

// GetSettings returns the current pricing and business configuration.
func GetSettings(settings *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, settings.Load())
	}
}

// SaveSettings validates and persists the settings form. A binding or
// validation failure writes nothing.
func SaveSettings(settings *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.Settings
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "Please enter valid numbers for costs and discount: " + err.Error()})
			return
		}

		if err := settings.Save(input); err != nil {
			var verr services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(400, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(500, gin.H{"error": "Failed to save settings: " + err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": "Settings saved successfully!"})
	}
}
