// Package integration exercises the full HTTP stack against a real
// database. It uses an in-memory sqlite database and in-memory object
// storage so the whole request path runs without external services.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
	identityapp "github.com/shopadmin/backend/internal/application/identity"
	sitecontentapp "github.com/shopadmin/backend/internal/application/sitecontent"
	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/domain/sitecontent"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/config"
	"github.com/shopadmin/backend/internal/infrastructure/imaging"
	"github.com/shopadmin/backend/internal/infrastructure/persistence"
	"github.com/shopadmin/backend/internal/infrastructure/storage"
	"github.com/shopadmin/backend/internal/interfaces/http/handler"
	"github.com/shopadmin/backend/internal/interfaces/http/router"
)

// TestServer wraps the engine and its backing stores for API testing
type TestServer struct {
	DB     *gorm.DB
	Store  *storage.MemoryObjectStorage
	Engine *gin.Engine
	t      *testing.T
}

// NewTestServer builds the full stack over sqlite and memory storage
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalog.Image{},
		&catalog.Product{},
		&catalog.CampaignProduct{},
		&catalog.TrafficProduct{},
		&sitecontent.AppDownloadConfig{},
		&sitecontent.TrackingConfig{},
		&identity.User{},
	))

	imageRepo := persistence.NewGormImageRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	campaignRepo := persistence.NewGormCampaignProductRepository(db)
	trafficRepo := persistence.NewGormTrafficProductRepository(db)
	appDownloadRepo := persistence.NewGormAppDownloadRepository(db)
	trackingRepo := persistence.NewGormTrackingRepository(db)
	userRepo := persistence.NewGormUserRepository(db)

	store := storage.NewMemoryObjectStorage("https://cdn.test.local/shop-images")
	imageService := catalogapp.NewImageService(store, imaging.NewCompressor(1024, 1<<20),
		imageRepo, 5<<20, "images", "shop-images", nil)
	uploader := catalogapp.NewEditorUploader(imageService)

	productService := catalogapp.NewProductService(productRepo,
		persistence.NewProductEditorGateway(productRepo), uploader, nil)
	campaignService := catalogapp.NewCampaignProductService(campaignRepo,
		persistence.NewCampaignProductEditorGateway(campaignRepo), uploader, nil)
	trafficService := catalogapp.NewTrafficProductService(trafficRepo,
		persistence.NewTrafficProductEditorGateway(trafficRepo), uploader, nil)
	importService := catalogapp.NewImportService(trafficRepo, 5<<20, nil)
	siteContentService := sitecontentapp.NewService(appDownloadRepo, trackingRepo, nil)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-test-secret-000000000000",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "shopadmin-test",
		MaxRefreshCount:        5,
	})
	authService := identityapp.NewAuthService(userRepo, jwtService,
		auth.NewInMemoryTokenBlacklist(), nil)

	engine := router.New(router.Config{
		Env:           "test",
		HTTP:          config.HTTPConfig{MaxBodySize: 10 << 20},
		Logger:        zap.NewNop(),
		Validator:     authService,
		AuthHandler:   handler.NewAuthHandler(authService),
		SystemHandler: handler.NewSystemHandler(db),
		Protected: []router.Registrar{
			handler.NewProductHandler(productService),
			handler.NewCampaignProductHandler(campaignService),
			handler.NewTrafficProductHandler(trafficService),
			handler.NewImageHandler(imageService),
			handler.NewImportHandler(importService),
			handler.NewSiteContentHandler(siteContentService),
		},
	})

	return &TestServer{DB: db, Store: store, Engine: engine, t: t}
}

// SignIn creates an admin user and returns a valid access token
func (ts *TestServer) SignIn() string {
	ts.t.Helper()

	user, err := identity.NewUser("admin", "integration-password")
	require.NoError(ts.t, err)
	require.NoError(ts.t, persistence.NewGormUserRepository(ts.DB).Save(ts.t.Context(), user))

	w := ts.Request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "integration-password",
	}, "")
	require.Equal(ts.t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Tokens struct {
				AccessToken string `json:"access_token"`
			} `json:"tokens"`
		} `json:"data"`
	}
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(ts.t, resp.Data.Tokens.AccessToken)
	return resp.Data.Tokens.AccessToken
}

// Request makes a JSON request against the test server
func (ts *TestServer) Request(method, path string, body any, token string) *httptest.ResponseRecorder {
	ts.t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}

// RawRequest makes a request with a prebuilt body and content type
func (ts *TestServer) RawRequest(method, path string, body *bytes.Buffer, contentType, token string) *httptest.ResponseRecorder {
	ts.t.Helper()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}
