package handler

import (
	"net/http"
	"strings"

	"softhouse_backend/internal/quotes/service"
	"softhouse_backend/internal/quotes/transport"
	"softhouse_backend/platform/httpkit"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/ratelimit"

	"github.com/gin-gonic/gin"
)

// PublicHandler handles the unauthenticated quote-request form.
type PublicHandler struct {
	svc     *service.Service
	limiter ratelimit.Limiter
	log     *logger.Logger
}

// NewPublicHandler creates a public quotes handler.
func NewPublicHandler(svc *service.Service, limiter ratelimit.Limiter, log *logger.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, limiter: limiter, log: log}
}

// RegisterRoutes registers the public quote routes.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

// Submit accepts a quote request from the website form.
func (h *PublicHandler) Submit(c *gin.Context) {
	var req transport.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	// Throttle by submitted identity before doing any real work. The
	// limiter failing open is deliberate: a broken Redis must not take
	// the quote form down with it.
	key := strings.ToLower(strings.TrimSpace(req.ClientEmail))
	if key != "" && h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			h.log.Warn("submission limiter unavailable", "error", err)
		} else if !allowed {
			h.log.RateLimitExceeded(key, c.Request.URL.Path)
			httpkit.Error(c, http.StatusTooManyRequests, "too many quote requests, try again later", nil)
			return
		}
	}

	quote, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, transport.SubmitQuoteResponse{ID: quote.ID, Status: quote.Status})
}
