package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is the database model for a contact form submission.
type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Subject   *string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// ListParams filters the admin inbox.
type ListParams struct {
	UnreadOnly bool
	Offset     int
	Limit      int
}

// MessagesRepository defines the persistence contract for contact messages.
type MessagesRepository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id uuid.UUID) (Message, error)
	List(ctx context.Context, params ListParams) ([]Message, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) (Message, error)
}
