package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
)

// TrafficProductHandler handles traffic product API endpoints
type TrafficProductHandler struct {
	BaseHandler
	service *catalogapp.TrafficProductService
}

// NewTrafficProductHandler creates a new TrafficProductHandler
func NewTrafficProductHandler(service *catalogapp.TrafficProductService) *TrafficProductHandler {
	return &TrafficProductHandler{service: service}
}

// List returns traffic products matching the query filter
func (h *TrafficProductHandler) List(c *gin.Context) {
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

// GetByID returns one traffic product
func (h *TrafficProductHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid traffic product ID")
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
func (h *TrafficProductHandler) Create(c *gin.Context) {
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
func (h *TrafficProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid traffic product ID")
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

// Delete removes a traffic product
func (h *TrafficProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid traffic product ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers traffic product routes
func (h *TrafficProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/traffic-products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
