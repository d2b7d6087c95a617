package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/imaging"
	"github.com/shopadmin/backend/internal/infrastructure/storage"
)

func newTestImageService(repo *MockImageRepository, store *storage.MemoryObjectStorage) *ImageService {
	return NewImageService(store, imaging.NewCompressor(1024, 1<<20), repo, 5<<20, "images", "shop-images", nil)
}

func TestImageService_UploadTooLargeRejectedBeforeStorage(t *testing.T) {
	repo := new(MockImageRepository)
	store := storage.NewMemoryObjectStorage("")
	svc := newTestImageService(repo, store)

	_, err := svc.Upload(context.Background(), UploadImageInput{
		FileName:    "huge.jpg",
		ContentType: "image/jpeg",
		Size:        6 << 20,
		Data:        []byte("x"),
	})

	var derr *shared.DomainError
	assert.ErrorAs(t, err, &derr)
	assert.Equal(t, "UPLOAD_TOO_LARGE", derr.Code)
	assert.Equal(t, 0, store.Len())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestImageService_WrongTypeRejected(t *testing.T) {
	repo := new(MockImageRepository)
	store := storage.NewMemoryObjectStorage("")
	svc := newTestImageService(repo, store)

	_, err := svc.Upload(context.Background(), UploadImageInput{
		FileName:    "doc.pdf",
		ContentType: "application/pdf",
		Size:        100,
		Data:        []byte("%PDF"),
	})

	var derr *shared.DomainError
	assert.ErrorAs(t, err, &derr)
	assert.Equal(t, "UPLOAD_WRONG_TYPE", derr.Code)
	assert.Equal(t, 0, store.Len())
}

func TestImageService_UploadStoresObjectAndRow(t *testing.T) {
	repo := new(MockImageRepository)
	store := storage.NewMemoryObjectStorage("https://cdn.example.com/shop-images")
	svc := newTestImageService(repo, store)

	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	// small file, passes through compression untouched
	image, err := svc.Upload(context.Background(), UploadImageInput{
		FileName:    "logo.png",
		ContentType: "image/png",
		Size:        4,
		Data:        []byte("data"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "logo.png", image.FileName)
	assert.True(t, strings.HasPrefix(image.FilePath, "images/"))
	assert.True(t, strings.HasSuffix(image.FilePath, ".png"))
	assert.Equal(t, store.PublicURL(image.FilePath), image.PublicURL)
	repo.AssertExpectations(t)
}

func TestImageService_RowFailureCleansUpObject(t *testing.T) {
	repo := new(MockImageRepository)
	store := storage.NewMemoryObjectStorage("")
	svc := newTestImageService(repo, store)

	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.Upload(context.Background(), UploadImageInput{
		FileName:    "logo.png",
		ContentType: "image/png",
		Size:        4,
		Data:        []byte("data"),
	})

	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestImageService_DeleteByPublicURLMissingRowIsNoop(t *testing.T) {
	repo := new(MockImageRepository)
	store := storage.NewMemoryObjectStorage("")
	svc := newTestImageService(repo, store)

	repo.On("FindByPublicURL", mock.Anything, "https://elsewhere.example.com/a.jpg").
		Return(nil, shared.ErrNotFound)

	err := svc.DeleteByPublicURL(context.Background(), "https://elsewhere.example.com/a.jpg")
	assert.NoError(t, err)
}

func TestImageService_DeleteRemovesRowAndObject(t *testing.T) {
	repo := new(MockImageRepository)
	store := storage.NewMemoryObjectStorage("")
	svc := newTestImageService(repo, store)
	ctx := context.Background()

	assert.NoError(t, store.Upload(ctx, "images/1.png", []byte("x"), "image/png"))
	image, err := catalog.NewImage("1.png", "images/1.png", store.PublicURL("images/1.png"), 1, "image/png", "shop-images")
	assert.NoError(t, err)

	repo.On("FindByID", mock.Anything, image.ID).Return(image, nil)
	repo.On("Delete", mock.Anything, image.ID).Return(nil)

	assert.NoError(t, svc.Delete(ctx, image.ID))
	assert.Equal(t, 0, store.Len())
	repo.AssertExpectations(t)
}
