package handler

import (
	"github.com/gin-gonic/gin"

	sitecontentapp "github.com/shopadmin/backend/internal/application/sitecontent"
)

// SiteContentHandler handles singleton site content endpoints
type SiteContentHandler struct {
	BaseHandler
	service *sitecontentapp.Service
}

// NewSiteContentHandler creates a new SiteContentHandler
func NewSiteContentHandler(service *sitecontentapp.Service) *SiteContentHandler {
	return &SiteContentHandler{service: service}
}

// GetAppDownload returns the app download store links
func (h *SiteContentHandler) GetAppDownload(c *gin.Context) {
	cfg, err := h.service.GetAppDownload(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// SaveAppDownload replaces the app download store links
func (h *SiteContentHandler) SaveAppDownload(c *gin.Context) {
	var req sitecontentapp.SaveAppDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cfg, err := h.service.SaveAppDownload(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// GetTracking returns the analytics tracking snippets
func (h *SiteContentHandler) GetTracking(c *gin.Context) {
	cfg, err := h.service.GetTracking(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// SaveTracking replaces the analytics tracking snippets
func (h *SiteContentHandler) SaveTracking(c *gin.Context) {
	var req sitecontentapp.SaveTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cfg, err := h.service.SaveTracking(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// RegisterRoutes registers site content routes
func (h *SiteContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	site := rg.Group("/site")
	{
		site.GET("/app-download", h.GetAppDownload)
		site.PUT("/app-download", h.SaveAppDownload)
		site.GET("/tracking", h.GetTracking)
		site.PUT("/tracking", h.SaveTracking)
	}
}
