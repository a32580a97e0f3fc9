package handler

import (
	"net/http"
	"strings"

	"softhouse_backend/internal/contact/service"
	"softhouse_backend/internal/contact/transport"
	"softhouse_backend/platform/httpkit"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/ratelimit"

	"github.com/gin-gonic/gin"
)

// PublicHandler handles the unauthenticated contact form.
type PublicHandler struct {
	svc     *service.Service
	limiter ratelimit.Limiter
	log     *logger.Logger
}

// NewPublicHandler creates a public contact handler.
func NewPublicHandler(svc *service.Service, limiter ratelimit.Limiter, log *logger.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, limiter: limiter, log: log}
}

// RegisterRoutes registers the public contact routes.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

// Submit accepts a message from the website contact form.
func (h *PublicHandler) Submit(c *gin.Context) {
	var req transport.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	// Same fail-open throttle as the quote form.
	key := strings.ToLower(strings.TrimSpace(req.Email))
	if key != "" && h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			h.log.Warn("submission limiter unavailable", "error", err)
		} else if !allowed {
			h.log.RateLimitExceeded(key, c.Request.URL.Path)
			httpkit.Error(c, http.StatusTooManyRequests, "too many messages, try again later", nil)
			return
		}
	}

	msg, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, transport.SubmitMessageResponse{ID: msg.ID})
}
