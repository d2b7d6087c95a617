package sitecontent

import (
	"time"

	"github.com/shopadmin/backend/internal/domain/sitecontent"
)

// SaveAppDownloadRequest carries the full set of store links. Empty
// strings clear a link.
type SaveAppDownloadRequest struct {
	IOSAppStore           string `json:"ios_app_store"`
	AndroidGooglePlay     string `json:"android_google_play"`
	AndroidDirectDownload string `json:"android_direct_download"`
	HuaweiAppGallery      string `json:"huawei_app_gallery"`
	XiaomiAppStore        string `json:"xiaomi_app_store"`
	OppoAppStore          string `json:"oppo_app_store"`
	VivoAppStore          string `json:"vivo_app_store"`
	SamsungGalaxyStore    string `json:"samsung_galaxy_store"`
}

// AppDownloadResponse represents the app download config in API responses
type AppDownloadResponse struct {
	IOSAppStore           string    `json:"ios_app_store"`
	AndroidGooglePlay     string    `json:"android_google_play"`
	AndroidDirectDownload string    `json:"android_direct_download"`
	HuaweiAppGallery      string    `json:"huawei_app_gallery"`
	XiaomiAppStore        string    `json:"xiaomi_app_store"`
	OppoAppStore          string    `json:"oppo_app_store"`
	VivoAppStore          string    `json:"vivo_app_store"`
	SamsungGalaxyStore    string    `json:"samsung_galaxy_store"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// SaveTrackingRequest carries the analytics snippets.
type SaveTrackingRequest struct {
	GoogleAnalytics string `json:"google_analytics"`
	FacebookPixel   string `json:"facebook_pixel"`
	TiktokPixel     string `json:"tiktok_pixel"`
	CustomHead      string `json:"custom_head"`
	CustomBody      string `json:"custom_body"`
}

// TrackingResponse represents the tracking config in API responses
type TrackingResponse struct {
	GoogleAnalytics string    `json:"google_analytics"`
	FacebookPixel   string    `json:"facebook_pixel"`
	TiktokPixel     string    `json:"tiktok_pixel"`
	CustomHead      string    `json:"custom_head"`
	CustomBody      string    `json:"custom_body"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toAppDownloadResponse(cfg *sitecontent.AppDownloadConfig) AppDownloadResponse {
	return AppDownloadResponse{
		IOSAppStore:           cfg.IOSAppStore,
		AndroidGooglePlay:     cfg.AndroidGooglePlay,
		AndroidDirectDownload: cfg.AndroidDirectDownload,
		HuaweiAppGallery:      cfg.HuaweiAppGallery,
		XiaomiAppStore:        cfg.XiaomiAppStore,
		OppoAppStore:          cfg.OppoAppStore,
		VivoAppStore:          cfg.VivoAppStore,
		SamsungGalaxyStore:    cfg.SamsungGalaxyStore,
		UpdatedAt:             cfg.UpdatedAt,
	}
}

func toTrackingResponse(cfg *sitecontent.TrackingConfig) TrackingResponse {
	return TrackingResponse{
		GoogleAnalytics: cfg.GoogleAnalytics,
		FacebookPixel:   cfg.FacebookPixel,
		TiktokPixel:     cfg.TiktokPixel,
		CustomHead:      cfg.CustomHead,
		CustomBody:      cfg.CustomBody,
		UpdatedAt:       cfg.UpdatedAt,
	}
}
