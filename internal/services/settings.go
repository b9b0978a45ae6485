package services

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/garageservices/garage-backend/internal/models"
	"github.com/garageservices/garage-backend/internal/pricing"
)

// Default business contact details shown until settings are saved.
const (
	DefaultBusinessName  = "Premium Garage Services"
	DefaultBusinessEmail = "contact@garageservices.com"
	DefaultBusinessPhone = "+1-234-567-8900"
)

// SettingStore is the persistence surface the settings service depends on.
type SettingStore interface {
	Get(key, fallback string) string
	All() (map[string]string, error)
	Upsert(key, value string) error
}

// Settings is the editable business configuration: the pricing table plus
// the business contact details.
type Settings struct {
	TwoWheelerCost   float64 `json:"twoWheelerCost" binding:"required"`
	ThreeWheelerCost float64 `json:"threeWheelerCost" binding:"required"`
	FourWheelerCost  float64 `json:"fourWheelerCost" binding:"required"`
	PremiumDiscount  float64 `json:"premiumDiscount"`
	BusinessName     string  `json:"businessName"`
	BusinessEmail    string  `json:"businessEmail"`
	BusinessPhone    string  `json:"businessPhone"`
}

type SettingsService struct {
	store  SettingStore
	prices *pricing.Table
}

func NewSettingsService(store SettingStore, prices *pricing.Table) *SettingsService {
	return &SettingsService{store: store, prices: prices}
}

// LoadRates reads the pricing configuration from the settings table,
// falling back to defaults for absent or unparsable values. A failed read
// degrades to the full default table.
func LoadRates(store SettingStore) pricing.Rates {
	rates := pricing.DefaultRates()

	values, err := store.All()
	if err != nil {
		zap.L().Warn("could not load settings, using default prices", zap.Error(err))
		return rates
	}

	parse := func(key string, target *float64) {
		raw, ok := values[key]
		if !ok {
			return
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			zap.L().Warn("ignoring unparsable setting", zap.String("key", key), zap.String("value", raw))
			return
		}
		*target = value
	}

	parse(models.SettingTwoWheelerCost, &rates.TwoWheelerCost)
	parse(models.SettingThreeWheelerCost, &rates.ThreeWheelerCost)
	parse(models.SettingFourWheelerCost, &rates.FourWheelerCost)
	parse(models.SettingPremiumDiscount, &rates.PremiumDiscount)

	return rates
}

// Load assembles the current settings view for the settings screen.
func (s *SettingsService) Load() Settings {
	rates := LoadRates(s.store)
	return Settings{
		TwoWheelerCost:   rates.TwoWheelerCost,
		ThreeWheelerCost: rates.ThreeWheelerCost,
		FourWheelerCost:  rates.FourWheelerCost,
		PremiumDiscount:  rates.PremiumDiscount,
		BusinessName:     s.store.Get(models.SettingBusinessName, DefaultBusinessName),
		BusinessEmail:    s.store.Get(models.SettingBusinessEmail, DefaultBusinessEmail),
		BusinessPhone:    s.store.Get(models.SettingBusinessPhone, DefaultBusinessPhone),
	}
}

// Save upserts every known key as its own statement, then swaps the
// in-process pricing table. A failure mid-sequence leaves earlier keys
// written and the pricing table untouched. Already-stored bookings keep
// their creation-time cost either way.
func (s *SettingsService) Save(input Settings) error {
	if input.TwoWheelerCost < 0 || input.ThreeWheelerCost < 0 ||
		input.FourWheelerCost < 0 || input.PremiumDiscount < 0 {
		return ValidationError("costs and discount must be non-negative")
	}

	formatted := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	writes := []struct{ key, value string }{
		{models.SettingTwoWheelerCost, formatted(input.TwoWheelerCost)},
		{models.SettingThreeWheelerCost, formatted(input.ThreeWheelerCost)},
		{models.SettingFourWheelerCost, formatted(input.FourWheelerCost)},
		{models.SettingPremiumDiscount, formatted(input.PremiumDiscount)},
		{models.SettingBusinessName, strings.TrimSpace(input.BusinessName)},
		{models.SettingBusinessEmail, strings.TrimSpace(input.BusinessEmail)},
		{models.SettingBusinessPhone, strings.TrimSpace(input.BusinessPhone)},
	}

	for _, write := range writes {
		if err := s.store.Upsert(write.key, write.value); err != nil {
			return err
		}
	}

	s.prices.Update(pricing.Rates{
		TwoWheelerCost:   input.TwoWheelerCost,
		ThreeWheelerCost: input.ThreeWheelerCost,
		FourWheelerCost:  input.FourWheelerCost,
		PremiumDiscount:  input.PremiumDiscount,
	})
	return nil
}
