package repository

import (
	"context"
	"errors"
	"fmt"

	"softhouse_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageNotFoundMsg = "message not found"

const messageColumns = `id, name, email, phone, subject, message, read, created_at`

// Repository provides Postgres-backed persistence for contact messages.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new contact messages repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ MessagesRepository = (*Repository)(nil)

// Create inserts a new contact message.
func (r *Repository) Create(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, msg.Read, msg.CreatedAt,
	); err != nil {
		return apperr.Internal("failed to store contact message", err).WithOp("contact.Create")
	}

	return nil
}

// GetByID fetches a single message.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE id = $1`

	msg, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Message{}, apperr.NotFound(messageNotFoundMsg)
		}
		return Message{}, apperr.Internal("failed to load contact message", err).WithOp("contact.GetByID")
	}
	return msg, nil
}

// List returns messages newest-first with the total count for pagination.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Message, int, error) {
	where := ""
	args := []interface{}{}
	argPos := 1

	if params.UnreadOnly {
		where = " AND read = FALSE"
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM contact_messages WHERE 1=1` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Internal("failed to count contact messages", err).WithOp("contact.List")
	}

	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE 1=1` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list contact messages", err).WithOp("contact.List")
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, 0, apperr.Internal("failed to scan contact message", err).WithOp("contact.List")
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Internal("failed to read contact messages", err).WithOp("contact.List")
	}

	return messages, total, nil
}

// MarkRead flags a message as read and returns the updated record.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) (Message, error) {
	query := `UPDATE contact_messages SET read = TRUE WHERE id = $1 RETURNING ` + messageColumns

	msg, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Message{}, apperr.NotFound(messageNotFoundMsg)
		}
		return Message{}, apperr.Internal("failed to mark message read", err).WithOp("contact.MarkRead")
	}
	return msg, nil
}

func scanMessage(row pgx.Row) (Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Read, &m.CreatedAt)
	return m, err
}
