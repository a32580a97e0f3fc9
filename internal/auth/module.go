// Package auth provides the admin authentication module.
package auth

import (
	"softhouse_backend/internal/auth/handler"
	"softhouse_backend/internal/auth/repository"
	"softhouse_backend/internal/auth/service"
	apphttp "softhouse_backend/internal/http"
	"softhouse_backend/platform/config"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the auth domain module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new auth module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, val, log)

	return &Module{handler: handler.New(svc)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/auth"), ctx.LoginRateLimiter.RateLimit())
}

var _ apphttp.Module = (*Module)(nil)
