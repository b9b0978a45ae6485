package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garageservices/garage-backend/internal/middleware"
	"github.com/garageservices/garage-backend/internal/services"
)

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid booking id"})
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles the creation of a new booking. An email failure
// never fails the booking; the outcome is reported alongside it.
func CreateBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		booking, email, err := bookings.Create(input, middleware.CurrentUserID(c))
		if err != nil {
			var verr services.ValidationError
			if errors.As(err, &verr) {
				c.JSON(400, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(500, gin.H{"error": "Booking failed: " + err.Error()})
			return
		}

		message := "Booking created successfully!"
		if email.Attempted {
			if email.Sent {
				message = "Booking successful! Confirmation email sent."
			} else {
				message = "Booking saved but email failed: " + email.Reason
			}
		}

		c.JSON(201, gin.H{
			"message": message,
			"booking": booking,
			"email":   email,
		})
	}
}

// GetBookings lists the booking history, optionally filtered by the q
// substring, scoped to the authenticated user.
func GetBookings(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := bookings.History(c.Query("q"), middleware.CurrentUserID(c))
		c.JSON(200, gin.H{
			"count":    len(list),
			"bookings": list,
		})
	}
}

// GetBooking returns one booking's details.
func GetBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}

		booking, err := bookings.Get(id)
		if err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(200, booking)
	}
}

// UpdateBookingStatus updates the status of a booking
func UpdateBookingStatus(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := bookings.UpdateStatus(id, input.Status); err != nil {
			var verr services.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(400, gin.H{"error": verr.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(404, gin.H{"error": "Booking not found"})
			default:
				c.JSON(500, gin.H{"error": "Update failed: " + err.Error()})
			}
			return
		}

		c.JSON(200, gin.H{"message": "Status updated successfully!"})
	}
}

// DeleteBooking deletes one booking by id.
func DeleteBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := bookingID(c)
		if !ok {
			return
		}

		if err := bookings.Delete(id); err != nil {
			c.JSON(500, gin.H{"error": "Delete failed: " + err.Error()})
			return
		}
		c.JSON(200, gin.H{"message": "Booking deleted successfully!"})
	}
}
