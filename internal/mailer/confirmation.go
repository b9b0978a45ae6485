package mailer

import (
	"fmt"
	"strings"

	"github.com/garageservices/garage-backend/internal/models"
)

// ConfirmationSubject returns the fixed subject for a booking confirmation.
func ConfirmationSubject(booking *models.Booking) string {
	return fmt.Sprintf("Booking Confirmed: %s Service", booking.ServiceType)
}

// ConfirmationBody renders the plain-text confirmation message.
func ConfirmationBody(booking *models.Booking) string {
	lines := []string{
		fmt.Sprintf("Hi %s,", booking.Name),
		"",
		"Your garage service booking is confirmed.",
		fmt.Sprintf("Booking ID: %d", booking.ID),
		fmt.Sprintf("Vehicle Type: %s", booking.WheelerType),
		fmt.Sprintf("Service Package: %s", booking.ServiceType),
		fmt.Sprintf("Appointment: %s", booking.AppointmentDate),
		fmt.Sprintf("Total Cost: Rs. %.2f", booking.Cost),
	}
	if booking.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", booking.Notes))
	}
	lines = append(lines,
		"",
		"Our team will contact you shortly to confirm your appointment.",
		"Thank you for choosing our services.",
	)
	return strings.Join(lines, "\n")
}

// SendBookingConfirmation emails the booking confirmation to the customer.
func (m *Mailer) SendBookingConfirmation(booking *models.Booking) error {
	return m.Send(booking.Email, ConfirmationSubject(booking), ConfirmationBody(booking))
}
