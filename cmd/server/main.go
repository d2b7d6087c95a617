package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
	identityapp "github.com/shopadmin/backend/internal/application/identity"
	sitecontentapp "github.com/shopadmin/backend/internal/application/sitecontent"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/imaging"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/infrastructure/persistence"
	"github.com/shopadmin/backend/internal/infrastructure/storage"
	"github.com/shopadmin/backend/internal/interfaces/http/handler"
	"github.com/shopadmin/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting shop admin backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	// repositories
	imageRepo := persistence.NewGormImageRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignProductRepository(db.DB)
	trafficRepo := persistence.NewGormTrafficProductRepository(db.DB)
	appDownloadRepo := persistence.NewGormAppDownloadRepository(db.DB)
	trackingRepo := persistence.NewGormTrackingRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// object storage, with an in-memory fallback for local development
	var store storage.ObjectStorage
	if cfg.Storage.AccessKey != "" {
		s3store, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
		store = s3store
	} else {
		log.Warn("no storage credentials configured, using in-memory object storage")
		store = storage.NewMemoryObjectStorage(cfg.Storage.PublicBaseURL)
	}

	// image upload pipeline
	compressor := imaging.NewCompressor(cfg.Upload.MaxDimension, cfg.Upload.TargetBytes)
	imageService := catalogapp.NewImageService(store, compressor, imageRepo,
		cfg.Upload.MaxFileSize, cfg.Upload.KeyPrefix, cfg.Storage.Bucket, log)
	uploader := catalogapp.NewEditorUploader(imageService)

	// catalog services, each behind its own editor gateway
	productService := catalogapp.NewProductService(productRepo,
		persistence.NewProductEditorGateway(productRepo), uploader, log)
	campaignService := catalogapp.NewCampaignProductService(campaignRepo,
		persistence.NewCampaignProductEditorGateway(campaignRepo), uploader, log)
	trafficService := catalogapp.NewTrafficProductService(trafficRepo,
		persistence.NewTrafficProductEditorGateway(trafficRepo), uploader, log)
	importService := catalogapp.NewImportService(trafficRepo, cfg.Upload.MaxFileSize, log)
	siteContentService := sitecontentapp.NewService(appDownloadRepo, trackingRepo, log)

	// token revocation backend
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		blacklist = auth.NewRedisTokenBlacklist(client)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)

	engine := router.New(router.Config{
		Env:           cfg.App.Env,
		HTTP:          cfg.HTTP,
		Logger:        log,
		Validator:     authService,
		AuthHandler:   handler.NewAuthHandler(authService),
		SystemHandler: handler.NewSystemHandler(db.DB),
		Protected: []router.Registrar{
			handler.NewProductHandler(productService),
			handler.NewCampaignProductHandler(campaignService),
			handler.NewTrafficProductHandler(trafficService),
			handler.NewImageHandler(imageService),
			handler.NewImportHandler(importService),
			handler.NewSiteContentHandler(siteContentService),
		},
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
