package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// CampaignProductService drives campaign product CRUD through the
// editor pipeline.
type CampaignProductService struct {
	repo       catalog.CampaignProductRepository
	controller *editor.Controller
}

// NewCampaignProductService creates a new CampaignProductService
func NewCampaignProductService(repo catalog.CampaignProductRepository, gateway editor.Gateway, uploader editor.Uploader, logger *zap.Logger) *CampaignProductService {
	return &CampaignProductService{
		repo:       repo,
		controller: editor.NewController(catalog.CampaignProductSchema(), gateway, uploader, logger),
	}
}

// List returns campaign products matching the filter
func (s *CampaignProductService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[CampaignProductResponse], error) {
	f := toSharedFilter(filter)
	products, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]CampaignProductResponse, len(products))
	for i := range products {
		items[i] = ToCampaignProductResponse(&products[i])
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// ListRecommended returns the recommended campaign products
func (s *CampaignProductService) ListRecommended(ctx context.Context, filter ListFilter) ([]CampaignProductResponse, error) {
	products, err := s.repo.FindRecommended(ctx, toSharedFilter(filter))
	if err != nil {
		return nil, err
	}
	items := make([]CampaignProductResponse, len(products))
	for i := range products {
		items[i] = ToCampaignProductResponse(&products[i])
	}
	return items, nil
}

// Get returns one campaign product by ID
func (s *CampaignProductService) Get(ctx context.Context, id uuid.UUID) (*CampaignProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCampaignProductResponse(product)
	return &resp, nil
}

// Create runs a create editor session over the given values and files.
func (s *CampaignProductService) Create(ctx context.Context, values map[string]any, files []FileInput) (*CampaignProductSubmitResponse, error) {
	session := editor.NewCreateSession(s.controller.Schema())
	result, err := s.submit(ctx, session, values, files)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, result)
}

// Update runs an update editor session over an existing campaign product.
func (s *CampaignProductService) Update(ctx context.Context, id uuid.UUID, values map[string]any, files []FileInput) (*CampaignProductSubmitResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session := editor.NewUpdateSession(s.controller.Schema(), id, product.EditorValues())
	result, err := s.submit(ctx, session, values, files)
	if err != nil {
		return nil, err
	}
	if result.NoChanges {
		return &CampaignProductSubmitResponse{Product: ToCampaignProductResponse(product), NoChanges: true}, nil
	}
	return s.buildResponse(ctx, result)
}

// Delete removes a campaign product
func (s *CampaignProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *CampaignProductService) submit(ctx context.Context, session *editor.Session, values map[string]any, files []FileInput) (*editor.Result, error) {
	if err := stageSession(session, values, files); err != nil {
		return nil, err
	}
	return s.controller.Submit(ctx, session)
}

func (s *CampaignProductService) buildResponse(ctx context.Context, result *editor.Result) (*CampaignProductSubmitResponse, error) {
	id, err := resultID(result)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CampaignProductSubmitResponse{
		Product: ToCampaignProductResponse(product),
		Changed: result.Changed,
		Created: result.Created,
	}, nil
}
