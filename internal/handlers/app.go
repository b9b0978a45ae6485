package handlers

import "github.com/gin-gonic/gin"

// Root is the liveness probe kept from the original backend.
func Root(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Hello World!"})
}

// AppInfo points API consumers at the booking endpoint.
func AppInfo(c *gin.Context) {
	c.JSON(200, gin.H{
		"message":    "Garage Services backend is running.",
		"bookingApi": "/api/bookings",
	})
}
