package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garageservices/garage-backend/internal/middleware"
	"github.com/garageservices/garage-backend/internal/services"
)

// GetDashboard returns the stats cards and the recent-bookings table of the
// dashboard tab. Reads are best-effort; failures render as zeros.
func GetDashboard(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, recent := bookings.Dashboard(middleware.CurrentUserID(c))
		c.JSON(200, gin.H{
			"stats":  stats,
			"recent": recent,
		})
	}
}
