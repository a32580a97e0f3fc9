package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AdminUser is the database model for an admin account.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// UsersRepository defines the persistence contract for admin accounts.
type UsersRepository interface {
	GetByEmail(ctx context.Context, email string) (AdminUser, error)
}
