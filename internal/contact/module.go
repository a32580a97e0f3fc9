// Package contact provides the contact inbox domain module.
package contact

import (
	"softhouse_backend/internal/contact/handler"
	"softhouse_backend/internal/contact/repository"
	"softhouse_backend/internal/contact/service"
	apphttp "softhouse_backend/internal/http"
	"softhouse_backend/platform/events"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/ratelimit"
	"softhouse_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the contact domain module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
}

// NewModule creates a new contact module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, eventBus *events.InMemoryBus, val *validator.Validator, limiter ratelimit.Limiter, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, val)
	svc.SetEventBus(eventBus)

	return &Module{
		handler:       handler.New(svc),
		publicHandler: handler.NewPublicHandler(svc, limiter, log),
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "contact"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/contact"))
	m.publicHandler.RegisterRoutes(ctx.V1.Group("/public/contact"))
}

var _ apphttp.Module = (*Module)(nil)
