package models

// Setting is one key/value row of runtime business configuration.
type Setting struct {
	SettingKey   string `json:"settingKey" gorm:"column:setting_key;primaryKey"`
	SettingValue string `json:"settingValue" gorm:"column:setting_value;not null"`
}

// TableName specifies the table name
func (Setting) TableName() string {
	return "settings"
}

// Known setting keys.
const (
	SettingTwoWheelerCost   = "two_wheeler_cost"
	SettingThreeWheelerCost = "three_wheeler_cost"
	SettingFourWheelerCost  = "four_wheeler_cost"
	SettingPremiumDiscount  = "premium_discount"
	SettingBusinessName     = "business_name"
	SettingBusinessEmail    = "business_email"
	SettingBusinessPhone    = "business_phone"
)
