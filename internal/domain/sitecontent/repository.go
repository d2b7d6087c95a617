package sitecontent

import "context"

// AppDownloadRepository loads and upserts the app download singleton.
type AppDownloadRepository interface {
	Get(ctx context.Context) (*AppDownloadConfig, error)
	Save(ctx context.Context, cfg *AppDownloadConfig) error
}

// TrackingRepository loads and upserts the tracking singleton.
type TrackingRepository interface {
	Get(ctx context.Context) (*TrackingConfig, error)
	Save(ctx context.Context, cfg *TrackingConfig) error
}
