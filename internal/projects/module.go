// Package projects provides the case study showcase domain module.
package projects

import (
	apphttp "softhouse_backend/internal/http"
	"softhouse_backend/internal/projects/handler"
	"softhouse_backend/internal/projects/repository"
	"softhouse_backend/internal/projects/service"
	"softhouse_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the projects domain module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
}

// NewModule creates a new projects module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, val)

	return &Module{
		handler:       handler.New(svc),
		publicHandler: handler.NewPublicHandler(svc),
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "projects"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/projects"))
	m.publicHandler.RegisterRoutes(ctx.V1.Group("/public/projects"))
}

var _ apphttp.Module = (*Module)(nil)
