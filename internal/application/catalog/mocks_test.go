package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, category, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Create(ctx context.Context, values editor.Values) (editor.Values, error) {
	args := m.Called(ctx, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(editor.Values), args.Error(1)
}

func (m *MockGateway) Update(ctx context.Context, id uuid.UUID, changed editor.Values) (editor.Values, error) {
	args := m.Called(ctx, id, changed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(editor.Values), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file editor.FileSelection) (editor.AssetRef, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(editor.AssetRef), args.Error(1)
}

func (m *MockUploader) Retire(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Image), args.Error(1)
}

func (m *MockImageRepository) FindByPublicURL(ctx context.Context, url string) (*catalog.Image, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Image), args.Error(1)
}

func (m *MockImageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Image, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Image), args.Error(1)
}

func (m *MockImageRepository) Save(ctx context.Context, image *catalog.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockImageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockTrafficProductRepository struct {
	mock.Mock
}

func (m *MockTrafficProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.TrafficProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.TrafficProduct), args.Error(1)
}

func (m *MockTrafficProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.TrafficProduct, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.TrafficProduct), args.Error(1)
}

func (m *MockTrafficProductRepository) FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]catalog.TrafficProduct, error) {
	args := m.Called(ctx, category, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.TrafficProduct), args.Error(1)
}

func (m *MockTrafficProductRepository) Save(ctx context.Context, product *catalog.TrafficProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockTrafficProductRepository) SaveBatch(ctx context.Context, products []*catalog.TrafficProduct) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockTrafficProductRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockTrafficProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrafficProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockCampaignProductRepository struct {
	mock.Mock
}

func (m *MockCampaignProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CampaignProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CampaignProduct), args.Error(1)
}

func (m *MockCampaignProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.CampaignProduct, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CampaignProduct), args.Error(1)
}

func (m *MockCampaignProductRepository) FindRecommended(ctx context.Context, filter shared.Filter) ([]catalog.CampaignProduct, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CampaignProduct), args.Error(1)
}

func (m *MockCampaignProductRepository) Save(ctx context.Context, product *catalog.CampaignProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCampaignProductRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockCampaignProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampaignProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
