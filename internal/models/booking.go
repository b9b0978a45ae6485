package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusInProgress BookingStatus = "In Progress"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the fixed booking statuses.
func ValidStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a garage service booking. Cost is fixed at creation time from
// the pricing table in effect then; later price changes never touch it.
// UserID is nil for guest bookings.
type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          *uint         `json:"userId" gorm:"column:user_id"`
	User            *User         `json:"-" gorm:"foreignKey:UserID"`
	Name            string        `json:"name" gorm:"column:name;not null"`
	Email           string        `json:"email" gorm:"column:email;not null"`
	Phone           string        `json:"phone" gorm:"column:phone"`
	WheelerType     string        `json:"wheelerType" gorm:"column:wheeler_type;not null"`
	ServiceType     string        `json:"serviceType" gorm:"column:service_type;not null"`
	Cost            float64       `json:"cost" gorm:"column:cost;not null"`
	AppointmentDate string        `json:"appointmentDate" gorm:"column:appointment_date"`
	Notes           string        `json:"notes" gorm:"column:notes"`
	Status          BookingStatus `json:"status" gorm:"column:status;not null;default:'Pending'"`
	BookingDate     time.Time     `json:"bookingDate" gorm:"column:booking_date;autoCreateTime"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "garage_service_bookings"
}
