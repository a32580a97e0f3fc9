package handler

import (
	"net/http"

	"softhouse_backend/internal/auth/service"
	"softhouse_backend/internal/auth/transport"
	"softhouse_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles admin authentication endpoints.
type Handler struct {
	svc *service.Service
}

// New creates a new auth handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the auth routes. The login rate limiter is
// applied here rather than globally so only this endpoint pays for it.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	rg.POST("/login", loginLimiter, h.Login)
}

// Login authenticates an admin and returns an access token.
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
