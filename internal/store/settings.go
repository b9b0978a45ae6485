package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/garageservices/garage-backend/internal/models"
)

type SettingStore struct {
	db *gorm.DB
}

func NewSettingStore(db *gorm.DB) *SettingStore {
	return &SettingStore{db: db}
}

// Get returns the stored value for key, or fallback when the key is absent
// or the read fails.
func (s *SettingStore) Get(key, fallback string) string {
	var setting models.Setting
	if err := s.db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	return setting.SettingValue
}

// All returns every stored setting as a key/value map.
func (s *SettingStore) All() (map[string]string, error) {
	var settings []models.Setting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.SettingKey] = setting.SettingValue
	}
	return values, nil
}

// Upsert writes one key, overwriting any existing value. Callers issue one
// Upsert per key; a failure mid-sequence leaves earlier keys written.
func (s *SettingStore) Upsert(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"setting_value": value}),
	}).Create(&models.Setting{SettingKey: key, SettingValue: value}).Error
}
