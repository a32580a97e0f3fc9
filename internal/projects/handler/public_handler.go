package handler

import (
	"net/http"

	"softhouse_backend/internal/projects/service"
	"softhouse_backend/internal/projects/transport"
	"softhouse_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves published case studies to the website.
type PublicHandler struct {
	svc *service.Service
}

// NewPublicHandler creates a public projects handler.
func NewPublicHandler(svc *service.Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// RegisterRoutes registers the public project routes.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:slug", h.GetBySlug)
}

// List returns published projects, optionally featured only.
func (h *PublicHandler) List(c *gin.Context) {
	var req transport.ListProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.ListPublished(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// GetBySlug returns one published project by its URL slug.
func (h *PublicHandler) GetBySlug(c *gin.Context) {
	project, err := h.svc.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, project)
}
