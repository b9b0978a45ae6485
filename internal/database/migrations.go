package database

import (
	"gorm.io/gorm"

	"github.com/garageservices/garage-backend/internal/models"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Feedback{},
		&models.Setting{},
	)
	if err != nil {
		return err
	}

	// Keep the status column constrained to the fixed set
	if db.Migrator().HasTable(&models.Booking{}) {
		db.Exec(`ALTER TABLE garage_service_bookings DROP CONSTRAINT IF EXISTS garage_service_bookings_status_check`)
		if err := db.Exec(`ALTER TABLE garage_service_bookings ADD CONSTRAINT garage_service_bookings_status_check CHECK (status IN ('Pending', 'Confirmed', 'In Progress', 'Completed', 'Cancelled'))`).Error; err != nil {
			return err
		}
	}

	return nil
}
