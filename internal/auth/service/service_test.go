package service

import (
	"context"
	"testing"
	"time"

	"softhouse_backend/internal/auth/password"
	"softhouse_backend/internal/auth/repository"
	"softhouse_backend/internal/auth/transport"
	"softhouse_backend/platform/apperr"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/validator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret-test-secret-test-secret"

type fakeRepo struct {
	users map[string]repository.AdminUser
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (repository.AdminUser, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return repository.AdminUser{}, apperr.NotFound("user not found")
}

type fakeConfig struct{}

func (fakeConfig) GetJWTSecret() string             { return testSecret }
func (fakeConfig) GetAccessTokenTTL() time.Duration { return time.Hour }

func newService(t *testing.T) (*Service, uuid.UUID) {
	t.Helper()

	hash, err := password.Hash("correct-horse-battery")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	userID := uuid.New()
	repo := &fakeRepo{users: map[string]repository.AdminUser{
		"admin@example.com": {ID: userID, Email: "admin@example.com", PasswordHash: hash, Name: "Admin"},
	}}

	return New(repo, fakeConfig{}, validator.New(), logger.New("test")), userID
}

func TestLoginIssuesToken(t *testing.T) {
	svc, userID := newService(t)

	resp, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    " Admin@Example.com",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("tokenType = %q", resp.TokenType)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("subject = %q, want admin id", claims.Subject)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "admin@example.com",
		Password: "not-the-password",
	})
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("kind = %v, want unauthorized", apperr.GetKind(err))
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newService(t)

	_, wrongPass := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "admin@example.com",
		Password: "not-the-password",
	})
	_, unknown := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "ghost@example.com",
		Password: "not-the-password",
	})
	if wrongPass.Error() != unknown.Error() {
		t.Errorf("errors differ: %q vs %q", wrongPass, unknown)
	}
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), transport.LoginRequest{Email: "nope", Password: "short"})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation", apperr.GetKind(err))
	}
}
