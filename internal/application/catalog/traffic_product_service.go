package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/editor"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// TrafficProductService drives traffic product CRUD through the editor
// pipeline. Both image slots are required, so the editor enforces that
// a create session always carries two files or URLs.
type TrafficProductService struct {
	repo       catalog.TrafficProductRepository
	controller *editor.Controller
}

// NewTrafficProductService creates a new TrafficProductService
func NewTrafficProductService(repo catalog.TrafficProductRepository, gateway editor.Gateway, uploader editor.Uploader, logger *zap.Logger) *TrafficProductService {
	return &TrafficProductService{
		repo:       repo,
		controller: editor.NewController(catalog.TrafficProductSchema(), gateway, uploader, logger),
	}
}

// List returns traffic products matching the filter. A category filter
// goes through the dedicated repository lookup.
func (s *TrafficProductService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[TrafficProductResponse], error) {
	f := toSharedFilter(filter)
	var products []catalog.TrafficProduct
	var err error
	if filter.Category != "" {
		products, err = s.repo.FindByCategory(ctx, filter.Category, f)
	} else {
		products, err = s.repo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, countFilter(filter))
	if err != nil {
		return nil, err
	}
	items := make([]TrafficProductResponse, len(products))
	for i := range products {
		items[i] = ToTrafficProductResponse(&products[i])
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Get returns one traffic product by ID
func (s *TrafficProductService) Get(ctx context.Context, id uuid.UUID) (*TrafficProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTrafficProductResponse(product)
	return &resp, nil
}

// Create runs a create editor session over the given values and files.
func (s *TrafficProductService) Create(ctx context.Context, values map[string]any, files []FileInput) (*TrafficProductSubmitResponse, error) {
	session := editor.NewCreateSession(s.controller.Schema())
	result, err := s.submit(ctx, session, values, files)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, result)
}

// Update runs an update editor session over an existing traffic product.
func (s *TrafficProductService) Update(ctx context.Context, id uuid.UUID, values map[string]any, files []FileInput) (*TrafficProductSubmitResponse, error) {
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
		return &TrafficProductSubmitResponse{Product: ToTrafficProductResponse(product), NoChanges: true}, nil
	}
	return s.buildResponse(ctx, result)
}

// Delete removes a traffic product
func (s *TrafficProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *TrafficProductService) submit(ctx context.Context, session *editor.Session, values map[string]any, files []FileInput) (*editor.Result, error) {
	if err := stageSession(session, values, files); err != nil {
		return nil, err
	}
	return s.controller.Submit(ctx, session)
}

func (s *TrafficProductService) buildResponse(ctx context.Context, result *editor.Result) (*TrafficProductSubmitResponse, error) {
	id, err := resultID(result)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TrafficProductSubmitResponse{
		Product: ToTrafficProductResponse(product),
		Changed: result.Changed,
		Created: result.Created,
	}, nil
}
