package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/garageservices/garage-backend/internal/models"
	"github.com/garageservices/garage-backend/internal/pricing"
	"github.com/garageservices/garage-backend/internal/store"
)

// BookingStore is the persistence surface the booking service depends on.
type BookingStore interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	Search(query string, userID *uint) ([]models.Booking, error)
	Recent(limit int, userID *uint) ([]models.Booking, error)
	UpdateStatus(id uint, status models.BookingStatus) error
	Delete(id uint) error
	Stats(userID *uint) (store.Stats, error)
}

// Notifier sends the booking confirmation email.
type Notifier interface {
	SendBookingConfirmation(booking *models.Booking) error
}

// EmailOutcome reports what happened to the confirmation email. A failed
// email never fails the booking.
type EmailOutcome struct {
	Attempted bool   `json:"attempted"`
	Sent      bool   `json:"sent"`
	Reason    string `json:"reason,omitempty"`
}

type CreateBookingInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	WheelerType     string `json:"wheelerType" binding:"required"`
	ServiceType     string `json:"serviceType" binding:"required,oneof=Standard Premium"`
	AppointmentDate string `json:"appointmentDate"`
	Notes           string `json:"notes"`
}

type BookingService struct {
	store        BookingStore
	prices       *pricing.Table
	notifier     Notifier
	emailEnabled bool
}

func NewBookingService(bookings BookingStore, prices *pricing.Table, notifier Notifier, emailEnabled bool) *BookingService {
	return &BookingService{
		store:        bookings,
		prices:       prices,
		notifier:     notifier,
		emailEnabled: emailEnabled,
	}
}

// Create validates the input, prices the service with the table currently in
// effect, persists the booking and optionally emails a confirmation.
func (s *BookingService) Create(input CreateBookingInput, userID *uint) (*models.Booking, EmailOutcome, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, EmailOutcome{}, ValidationError("name and email are required")
	}

	premium := input.ServiceType == "Premium"
	booking := &models.Booking{
		UserID:          userID,
		Name:            name,
		Email:           email,
		Phone:           strings.TrimSpace(input.Phone),
		WheelerType:     input.WheelerType,
		ServiceType:     input.ServiceType,
		Cost:            s.prices.Cost(input.WheelerType, premium),
		AppointmentDate: strings.TrimSpace(input.AppointmentDate),
		Notes:           strings.TrimSpace(input.Notes),
		Status:          models.BookingStatusPending,
	}

	if err := s.store.Create(booking); err != nil {
		return nil, EmailOutcome{}, err
	}

	outcome := EmailOutcome{}
	if s.emailEnabled {
		outcome.Attempted = true
		if err := s.notifier.SendBookingConfirmation(booking); err != nil {
			outcome.Reason = err.Error()
			zap.L().Warn("booking confirmation email failed",
				zap.Uint("bookingId", booking.ID), zap.Error(err))
		} else {
			outcome.Sent = true
		}
	}

	return booking, outcome, nil
}

// History lists bookings, optionally filtered by a search substring. Read
// failures degrade to an empty list.
func (s *BookingService) History(query string, userID *uint) []models.Booking {
	bookings, err := s.store.Search(strings.TrimSpace(query), userID)
	if err != nil {
		zap.L().Error("booking history read failed", zap.Error(err))
		return []models.Booking{}
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings
}

// Dashboard returns aggregate stats and the most recent bookings. Both reads
// are best-effort and degrade to zero values.
func (s *BookingService) Dashboard(userID *uint) (store.Stats, []models.Booking) {
	stats, err := s.store.Stats(userID)
	if err != nil {
		zap.L().Error("dashboard stats read failed", zap.Error(err))
		stats = store.Stats{}
	}

	recent, err := s.store.Recent(10, userID)
	if err != nil {
		zap.L().Error("recent bookings read failed", zap.Error(err))
		recent = nil
	}
	if recent == nil {
		recent = []models.Booking{}
	}

	return stats, recent
}

func (s *BookingService) Get(id uint) (*models.Booking, error) {
	return s.store.GetByID(id)
}

func (s *BookingService) UpdateStatus(id uint, status string) error {
	if !models.ValidStatus(status) {
		return ValidationError("unknown booking status: " + status)
	}
	return s.store.UpdateStatus(id, models.BookingStatus(status))
}

func (s *BookingService) Delete(id uint) error {
	return s.store.Delete(id)
}
