package store

import (
	"gorm.io/gorm"

	"github.com/garageservices/garage-backend/internal/models"
)

// BookingStore issues one parameterized statement per call against the
// bookings table. There are no multi-statement transactions.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) Create(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

func (s *BookingStore) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Search lists bookings newest first, optionally filtered by a substring
// across name, email, phone and vehicle type, optionally scoped to a user.
func (s *BookingStore) Search(query string, userID *uint) ([]models.Booking, error) {
	tx := s.db.Model(&models.Booking{})

	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where(
			"name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR wheeler_type ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}

	var bookings []models.Booking
	if err := tx.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Recent returns the newest bookings up to limit, optionally user-scoped.
func (s *BookingStore) Recent(limit int, userID *uint) ([]models.Booking, error) {
	tx := s.db.Model(&models.Booking{})
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}

	var bookings []models.Booking
	if err := tx.Order("booking_date DESC").Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingStore) UpdateStatus(id uint, status models.BookingStatus) error {
	result := s.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *BookingStore) Delete(id uint) error {
	return s.db.Delete(&models.Booking{}, id).Error
}

// Stats is the dashboard aggregate over bookings.
type Stats struct {
	Total     int64   `json:"total"`
	Pending   int64   `json:"pending"`
	Completed int64   `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

// Stats runs one aggregate query, optionally user-scoped.
func (s *BookingStore) Stats(userID *uint) (Stats, error) {
	tx := s.db.Model(&models.Booking{}).Select(
		"COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending, " +
			"COALESCE(SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END), 0) AS completed, " +
			"COALESCE(SUM(cost), 0) AS revenue",
	)
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}

	var stats Stats
	if err := tx.Scan(&stats).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}
