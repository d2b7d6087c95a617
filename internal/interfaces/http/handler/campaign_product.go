package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
)

// CampaignProductHandler handles campaign product API endpoints
type CampaignProductHandler struct {
	BaseHandler
	service *catalogapp.CampaignProductService
}

// NewCampaignProductHandler creates a new CampaignProductHandler
func NewCampaignProductHandler(service *catalogapp.CampaignProductService) *CampaignProductHandler {
	return &CampaignProductHandler{service: service}
}

// List returns campaign products matching the query filter
func (h *CampaignProductHandler) List(c *gin.Context) {
	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListRecommended returns the recommended campaign products
func (h *CampaignProductHandler) ListRecommended(c *gin.Context) {
	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	products, err := h.service.ListRecommended(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// GetByID returns one campaign product
func (h *CampaignProductHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid campaign product ID")
		return
	}

	product, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Create runs a create editor submit over the request payload
func (h *CampaignProductHandler) Create(c *gin.Context) {
	values, files, err := editorPayload(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), values, files)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Update runs an update editor submit over the request payload
func (h *CampaignProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid campaign product ID")
		return
	}

	values, files, err := editorPayload(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, values, files)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a campaign product
func (h *CampaignProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid campaign product ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers campaign product routes
func (h *CampaignProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/campaign-products")
	{
		products.GET("", h.List)
		products.GET("/recommended", h.ListRecommended)
		products.GET("/:id", h.GetByID)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
