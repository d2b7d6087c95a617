package persistence

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/domain/sitecontent"
)

// newTestDB opens an in-memory sqlite database with the full schema
// migrated. Each call gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&catalog.Image{},
		&catalog.Product{},
		&catalog.CampaignProduct{},
		&catalog.TrafficProduct{},
		&sitecontent.AppDownloadConfig{},
		&sitecontent.TrackingConfig{},
		&identity.User{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
