package sitecontent

import (
	"net/url"
	"strings"
	"time"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// AppDownloadConfig is the single row of app store links shown on the
// storefront download page. There is exactly one config; saves upsert
// the fixed row.
type AppDownloadConfig struct {
	ID                    int64  `gorm:"primaryKey"`
	IOSAppStore           string `gorm:"type:text"`
	AndroidGooglePlay     string `gorm:"type:text"`
	AndroidDirectDownload string `gorm:"type:text"`
	HuaweiAppGallery      string `gorm:"type:text"`
	XiaomiAppStore        string `gorm:"type:text"`
	OppoAppStore          string `gorm:"type:text"`
	VivoAppStore          string `gorm:"type:text"`
	SamsungGalaxyStore    string `gorm:"type:text"`
	UpdatedAt             time.Time
}

// SingletonID is the fixed primary key of the one config row.
const SingletonID int64 = 1

// TableName returns the table name for GORM
func (AppDownloadConfig) TableName() string {
	return "app_download_configs"
}

// Validate checks that every non-empty link is a well-formed URL.
func (c *AppDownloadConfig) Validate() error {
	links := map[string]string{
		"ios_app_store":           c.IOSAppStore,
		"android_google_play":     c.AndroidGooglePlay,
		"android_direct_download": c.AndroidDirectDownload,
		"huawei_app_gallery":      c.HuaweiAppGallery,
		"xiaomi_app_store":        c.XiaomiAppStore,
		"oppo_app_store":          c.OppoAppStore,
		"vivo_app_store":          c.VivoAppStore,
		"samsung_galaxy_store":    c.SamsungGalaxyStore,
	}
	for name, link := range links {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		u, err := url.Parse(link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return shared.NewDomainError("INVALID_STORE_LINK", name+" must be a valid URL")
		}
	}
	return nil
}
