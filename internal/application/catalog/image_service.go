package catalog

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/imaging"
	"github.com/shopadmin/backend/internal/infrastructure/storage"
)

// allowedImageTypes are the MIME types accepted for upload.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadImageInput is one file handed to the upload pipeline.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// ImageService runs the upload pipeline: gate on size and type before
// any processing, compress, then store the object and its catalog row.
// The size gate fires before any network activity so oversized files
// cost nothing.
type ImageService struct {
	store       storage.ObjectStorage
	compressor  *imaging.Compressor
	imageRepo   catalog.ImageRepository
	maxFileSize int64
	keyPrefix   string
	bucket      string
	logger      *zap.Logger
}

// NewImageService creates a new ImageService
func NewImageService(
	store storage.ObjectStorage,
	compressor *imaging.Compressor,
	imageRepo catalog.ImageRepository,
	maxFileSize int64,
	keyPrefix string,
	bucket string,
	logger *zap.Logger,
) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if keyPrefix == "" {
		keyPrefix = "images"
	}
	return &ImageService{
		store:       store,
		compressor:  compressor,
		imageRepo:   imageRepo,
		maxFileSize: maxFileSize,
		keyPrefix:   keyPrefix,
		bucket:      bucket,
		logger:      logger,
	}
}

// Upload validates, compresses and stores one image, returning the
// catalog row that records it. If the database insert fails after the
// object was stored, the object is removed again.
func (s *ImageService) Upload(ctx context.Context, in UploadImageInput) (*catalog.Image, error) {
	size := in.Size
	if int64(len(in.Data)) > size {
		size = int64(len(in.Data))
	}
	if size > s.maxFileSize {
		return nil, editor.NewUploadError(editor.CodeUploadTooLarge,
			fmt.Errorf("file %s is %d bytes, limit is %d", in.FileName, size, s.maxFileSize))
	}
	if !allowedImageTypes[in.ContentType] {
		return nil, editor.NewUploadError(editor.CodeUploadWrongType,
			fmt.Errorf("unsupported file type %q", in.ContentType))
	}

	compressed, err := s.compressor.Compress(in.Data, in.ContentType)
	if err != nil {
		return nil, editor.NewUploadError(editor.CodeUploadCompressFail, err)
	}

	key := s.objectKey(compressed.Extension)
	if err := s.store.Upload(ctx, key, compressed.Data, compressed.ContentType); err != nil {
		return nil, editor.NewUploadError(editor.CodeUploadFailed, err)
	}

	publicURL := s.store.PublicURL(key)
	image, err := catalog.NewImage(in.FileName, key, publicURL, int64(len(compressed.Data)), compressed.ContentType, s.bucket)
	if err != nil {
		s.cleanupObject(ctx, key)
		return nil, err
	}

	if err := s.imageRepo.Save(ctx, image); err != nil {
		s.cleanupObject(ctx, key)
		return nil, editor.NewUploadError(editor.CodeUploadFailed, err)
	}

	s.logger.Info("image uploaded",
		zap.String("file_name", in.FileName),
		zap.String("key", key),
		zap.Int64("stored_size", image.FileSize))
	return image, nil
}

// Get returns one image row by ID.
func (s *ImageService) Get(ctx context.Context, id uuid.UUID) (*ImageResponse, error) {
	image, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToImageResponse(image)
	return &resp, nil
}

// List returns image rows matching the filter.
func (s *ImageService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ImageResponse], error) {
	f := toSharedFilter(filter)
	images, err := s.imageRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.imageRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]ImageResponse, len(images))
	for i := range images {
		items[i] = ToImageResponse(&images[i])
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Delete removes an image row and its stored object.
func (s *ImageService) Delete(ctx context.Context, id uuid.UUID) error {
	image, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, image.FilePath); err != nil {
		s.logger.Warn("failed to delete stored object",
			zap.String("key", image.FilePath),
			zap.Error(err))
	}
	return nil
}

// DeleteByPublicURL removes the image row and object serving the given
// URL. Used when an editor submit supersedes an old image.
func (s *ImageService) DeleteByPublicURL(ctx context.Context, url string) error {
	image, err := s.imageRepo.FindByPublicURL(ctx, url)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// image rows are not written for externally hosted URLs
			return nil
		}
		return err
	}
	return s.Delete(ctx, image.ID)
}

// objectKey builds a storage key of the form
// <prefix>/<unix-millis>_<random>.<ext> so names never collide.
func (s *ImageService) objectKey(ext string) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%s/%d_%s%s",
		strings.Trim(s.keyPrefix, "/"),
		time.Now().UnixMilli(),
		hex.EncodeToString(buf),
		ext)
}

func (s *ImageService) cleanupObject(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to clean up stored object", zap.String("key", key), zap.Error(err))
	}
}

// EditorUploader adapts ImageService to the editor's Uploader port.
type EditorUploader struct {
	images *ImageService
}

// NewEditorUploader creates a new EditorUploader
func NewEditorUploader(images *ImageService) *EditorUploader {
	return &EditorUploader{images: images}
}

// Upload stores a staged file and returns its asset reference.
func (u *EditorUploader) Upload(ctx context.Context, file editor.FileSelection) (editor.AssetRef, error) {
	image, err := u.images.Upload(ctx, UploadImageInput{
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Size:        file.Size,
		Data:        file.Data,
	})
	if err != nil {
		return editor.AssetRef{}, err
	}
	return editor.AssetRef{ID: image.ID, PublicURL: image.PublicURL}, nil
}

// Retire removes the asset previously serving the given URL.
func (u *EditorUploader) Retire(ctx context.Context, url string) error {
	return u.images.DeleteByPublicURL(ctx, url)
}

// Ensure EditorUploader implements editor.Uploader
var _ editor.Uploader = (*EditorUploader)(nil)
