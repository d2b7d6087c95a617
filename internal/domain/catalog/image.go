package catalog

import (
	"github.com/shopadmin/backend/internal/domain/shared"
)

// Image records one stored upload: where the object lives, its public
// URL and enough metadata to clean it up later.
type Image struct {
	shared.BaseEntity
	FileName   string `gorm:"type:varchar(255);not null"`
	FilePath   string `gorm:"type:text;not null"`
	PublicURL  string `gorm:"type:text;not null;index"`
	FileSize   int64  `gorm:"not null"`
	MimeType   string `gorm:"type:varchar(100);not null"`
	BucketName string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Image) TableName() string {
	return "images"
}

// NewImage creates an image record for a stored object
func NewImage(fileName, filePath, publicURL string, fileSize int64, mimeType, bucketName string) (*Image, error) {
	if fileName == "" || filePath == "" || publicURL == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image file name, path and URL are required")
	}
	if fileSize <= 0 {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image size must be positive")
	}

	return &Image{
		BaseEntity: shared.NewBaseEntity(),
		FileName:   fileName,
		FilePath:   filePath,
		PublicURL:  publicURL,
		FileSize:   fileSize,
		MimeType:   mimeType,
		BucketName: bucketName,
	}, nil
}
