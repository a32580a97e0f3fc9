// Package quotes provides the quote-request pipeline domain module.
package quotes

import (
	apphttp "softhouse_backend/internal/http"
	"softhouse_backend/internal/quotes/handler"
	"softhouse_backend/internal/quotes/repository"
	"softhouse_backend/internal/quotes/service"
	"softhouse_backend/platform/events"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/ratelimit"
	"softhouse_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the quotes domain module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates a new quotes module with all dependencies wired. The
// limiter throttles public form submissions per client email.
func NewModule(pool *pgxpool.Pool, eventBus *events.InMemoryBus, val *validator.Validator, limiter ratelimit.Limiter, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, val)
	svc.SetEventBus(eventBus)

	return &Module{
		handler:       handler.New(svc),
		publicHandler: handler.NewPublicHandler(svc, limiter, log),
		service:       svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "quotes"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/quotes"))

	// Public route, no auth middleware.
	m.publicHandler.RegisterRoutes(ctx.V1.Group("/public/quotes"))
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
