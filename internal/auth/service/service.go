// Package service implements admin authentication.
package service

import (
	"context"
	"strings"

	"softhouse_backend/internal/auth/password"
	"softhouse_backend/internal/auth/repository"
	"softhouse_backend/internal/auth/token"
	"softhouse_backend/internal/auth/transport"
	"softhouse_backend/platform/apperr"
	"softhouse_backend/platform/config"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/validator"
)

const invalidCredentialsMsg = "invalid credentials"

// Service provides admin login.
type Service struct {
	repo repository.UsersRepository
	cfg  config.AuthServiceConfig
	val  *validator.Validator
	log  *logger.Logger
}

// New creates a new auth service.
func New(repo repository.UsersRepository, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, val: val, log: log}
}

// Login verifies the admin's credentials and issues an access token.
// Unknown emails and wrong passwords produce the same error so the
// endpoint can't be used to probe for accounts.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if fields := validator.Fields(s.val.Struct(req)); len(fields) > 0 {
		return transport.LoginResponse{}, apperr.Validation("validation failed", fields)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			s.log.AuthEvent("login", req.Email, false, "unknown email")
			return transport.LoginResponse{}, apperr.Unauthorized(invalidCredentialsMsg)
		}
		return transport.LoginResponse{}, err
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		s.log.AuthEvent("login", req.Email, false, "wrong password")
		return transport.LoginResponse{}, apperr.Unauthorized(invalidCredentialsMsg)
	}

	ttl := s.cfg.GetAccessTokenTTL()
	accessToken, err := token.NewAccessToken(user.ID, ttl, s.cfg.GetJWTSecret())
	if err != nil {
		return transport.LoginResponse{}, apperr.Internal("failed to sign access token", err).WithOp("auth.Login")
	}

	s.log.AuthEvent("login", req.Email, true, "")
	return transport.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}
