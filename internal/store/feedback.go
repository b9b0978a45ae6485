package store

import (
	"gorm.io/gorm"

	"github.com/garageservices/garage-backend/internal/models"
)

type FeedbackStore struct {
	db *gorm.DB
}

func NewFeedbackStore(db *gorm.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) Create(text string) error {
	return s.db.Create(&models.Feedback{FeedbackText: text}).Error
}
