package repository

import (
	"context"
	"errors"

	"softhouse_backend/platform/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides Postgres-backed persistence for admin accounts.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new users repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ UsersRepository = (*Repository)(nil)

// GetByEmail fetches an admin account by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (AdminUser, error) {
	query := `SELECT id, email, password_hash, name, created_at FROM admin_users WHERE email = $1`

	var u AdminUser
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AdminUser{}, apperr.NotFound("user not found")
		}
		return AdminUser{}, apperr.Internal("failed to load admin user", err).WithOp("auth.GetByEmail")
	}
	return u, nil
}
