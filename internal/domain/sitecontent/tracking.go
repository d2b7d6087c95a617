package sitecontent

import "time"

// TrackingConfig is the single row of analytics and pixel snippets
// injected into storefront pages.
type TrackingConfig struct {
	ID              int64  `gorm:"primaryKey"`
	GoogleAnalytics string `gorm:"type:text"`
	FacebookPixel   string `gorm:"type:text"`
	TiktokPixel     string `gorm:"type:text"`
	CustomHead      string `gorm:"type:text"`
	CustomBody      string `gorm:"type:text"`
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (TrackingConfig) TableName() string {
	return "tracking_configs"
}
