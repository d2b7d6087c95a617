// Package sitecontent manages the storefront's singleton content
// blocks: app store links and analytics tracking codes.
package sitecontent

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/sitecontent"
)

// Service reads and writes the singleton site content rows.
type Service struct {
	appDownloadRepo sitecontent.AppDownloadRepository
	trackingRepo    sitecontent.TrackingRepository
	logger          *zap.Logger
}

// NewService creates a new Service
func NewService(
	appDownloadRepo sitecontent.AppDownloadRepository,
	trackingRepo sitecontent.TrackingRepository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		appDownloadRepo: appDownloadRepo,
		trackingRepo:    trackingRepo,
		logger:          logger,
	}
}

// GetAppDownload returns the app download config, empty if never saved.
func (s *Service) GetAppDownload(ctx context.Context) (*AppDownloadResponse, error) {
	cfg, err := s.appDownloadRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := toAppDownloadResponse(cfg)
	return &resp, nil
}

// SaveAppDownload validates and upserts the app download config.
func (s *Service) SaveAppDownload(ctx context.Context, req SaveAppDownloadRequest) (*AppDownloadResponse, error) {
	cfg := &sitecontent.AppDownloadConfig{
		IOSAppStore:           req.IOSAppStore,
		AndroidGooglePlay:     req.AndroidGooglePlay,
		AndroidDirectDownload: req.AndroidDirectDownload,
		HuaweiAppGallery:      req.HuaweiAppGallery,
		XiaomiAppStore:        req.XiaomiAppStore,
		OppoAppStore:          req.OppoAppStore,
		VivoAppStore:          req.VivoAppStore,
		SamsungGalaxyStore:    req.SamsungGalaxyStore,
		UpdatedAt:             time.Now().UTC(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := s.appDownloadRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("app download config saved")
	resp := toAppDownloadResponse(cfg)
	return &resp, nil
}

// GetTracking returns the tracking config, empty if never saved.
func (s *Service) GetTracking(ctx context.Context) (*TrackingResponse, error) {
	cfg, err := s.trackingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := toTrackingResponse(cfg)
	return &resp, nil
}

// SaveTracking upserts the tracking config.
func (s *Service) SaveTracking(ctx context.Context, req SaveTrackingRequest) (*TrackingResponse, error) {
	cfg := &sitecontent.TrackingConfig{
		GoogleAnalytics: req.GoogleAnalytics,
		FacebookPixel:   req.FacebookPixel,
		TiktokPixel:     req.TiktokPixel,
		CustomHead:      req.CustomHead,
		CustomBody:      req.CustomBody,
		UpdatedAt:       time.Now().UTC(),
	}
	if err := s.trackingRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("tracking config saved")
	resp := toTrackingResponse(cfg)
	return &resp, nil
}
