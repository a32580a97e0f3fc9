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

const quoteNotFoundMsg = "quote not found"

const quoteColumns = `
	id, client_name, client_email, client_phone, company, position,
	project_name, project_description, project_type, project_category,
	technologies, timeline, budget,
	features, integrations, platforms,
	has_existing_system, existing_system_details, main_goals, target_audience,
	status, proposal_value, proposal_timeline, proposal_notes,
	proposal_sent_at, proposal_accepted_at, notes,
	consent, source, urgency, created_at, updated_at`

// Repository provides Postgres-backed persistence for quotes.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new quotes repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ QuotesRepository = (*Repository)(nil)

// Create inserts a new quote.
func (r *Repository) Create(ctx context.Context, quote *Quote) error {
	query := `
		INSERT INTO quotes (
			id, client_name, client_email, client_phone, company, position,
			project_name, project_description, project_type, project_category,
			technologies, timeline, budget,
			features, integrations, platforms,
			has_existing_system, existing_system_details, main_goals, target_audience,
			status, proposal_value, proposal_timeline, proposal_notes,
			proposal_sent_at, proposal_accepted_at, notes,
			consent, source, urgency, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13,
			$14, $15, $16,
			$17, $18, $19, $20,
			$21, $22, $23, $24,
			$25, $26, $27,
			$28, $29, $30, $31, $32
		)`

	if _, err := r.pool.Exec(ctx, query,
		quote.ID, quote.ClientName, quote.ClientEmail, quote.ClientPhone, quote.Company, quote.Position,
		quote.ProjectName, quote.ProjectDescription, quote.ProjectType, quote.ProjectCategory,
		quote.Technologies, quote.Timeline, quote.Budget,
		quote.Features, quote.Integrations, quote.Platforms,
		quote.HasExistingSystem, quote.ExistingSystemDetails, quote.MainGoals, quote.TargetAudience,
		quote.Status, quote.ProposalValue, quote.ProposalTimeline, quote.ProposalNotes,
		quote.ProposalSentAt, quote.ProposalAcceptedAt, quote.Notes,
		quote.Consent, quote.Source, quote.Urgency, quote.CreatedAt, quote.UpdatedAt,
	); err != nil {
		return apperr.Internal("failed to store quote", err).WithOp("quotes.Create")
	}

	return nil
}

// GetByID fetches a single quote.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Quote, error) {
	query := `SELECT` + quoteColumns + ` FROM quotes WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, apperr.NotFound(quoteNotFoundMsg)
		}
		return Quote{}, apperr.Internal("failed to load quote", err).WithOp("quotes.GetByID")
	}
	return quote, nil
}

// UpdateStatus applies a status transition patch and returns the updated
// record. Timestamp columns keep their current value when the patch
// carries nil.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, patch StatusPatch) (Quote, error) {
	query := `
		UPDATE quotes SET
			status = $2,
			proposal_sent_at = COALESCE($3, proposal_sent_at),
			proposal_accepted_at = COALESCE($4, proposal_accepted_at),
			notes = COALESCE($5, notes),
			updated_at = $6
		WHERE id = $1
		RETURNING` + quoteColumns

	row := r.pool.QueryRow(ctx, query, id, patch.Status, patch.ProposalSentAt, patch.ProposalAcceptedAt, patch.Notes, patch.UpdatedAt)
	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, apperr.NotFound(quoteNotFoundMsg)
		}
		return Quote{}, apperr.Internal("failed to update quote status", err).WithOp("quotes.UpdateStatus")
	}
	return quote, nil
}

// UpdateProposal sets the commercial terms and returns the updated record.
func (r *Repository) UpdateProposal(ctx context.Context, id uuid.UUID, patch ProposalPatch) (Quote, error) {
	query := `
		UPDATE quotes SET
			proposal_value = COALESCE($2, proposal_value),
			proposal_timeline = COALESCE($3, proposal_timeline),
			proposal_notes = COALESCE($4, proposal_notes),
			updated_at = $5
		WHERE id = $1
		RETURNING` + quoteColumns

	row := r.pool.QueryRow(ctx, query, id, patch.ProposalValue, patch.ProposalTimeline, patch.ProposalNotes, patch.UpdatedAt)
	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Quote{}, apperr.NotFound(quoteNotFoundMsg)
		}
		return Quote{}, apperr.Internal("failed to update proposal", err).WithOp("quotes.UpdateProposal")
	}
	return quote, nil
}

// List returns quotes newest-first with the total count for pagination.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Quote, int, error) {
	where := ""
	args := []interface{}{}
	argPos := 1

	if params.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *params.Status)
		argPos++
	}
	if params.Email != nil {
		where += fmt.Sprintf(" AND client_email = $%d", argPos)
		args = append(args, *params.Email)
		argPos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM quotes WHERE 1=1` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Internal("failed to count quotes", err).WithOp("quotes.List")
	}

	query := `SELECT` + quoteColumns + ` FROM quotes WHERE 1=1` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list quotes", err).WithOp("quotes.List")
	}
	defer rows.Close()

	var quotes []Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, 0, apperr.Internal("failed to scan quote", err).WithOp("quotes.List")
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Internal("failed to read quotes", err).WithOp("quotes.List")
	}

	return quotes, total, nil
}

// CountByStatus returns the number of quotes per status.
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM quotes GROUP BY status`)
	if err != nil {
		return nil, apperr.Internal("failed to count quotes by status", err).WithOp("quotes.CountByStatus")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, apperr.Internal("failed to scan status count", err).WithOp("quotes.CountByStatus")
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal("failed to read status counts", err).WithOp("quotes.CountByStatus")
	}

	return counts, nil
}

func scanQuote(row pgx.Row) (Quote, error) {
	var q Quote
	err := row.Scan(
		&q.ID, &q.ClientName, &q.ClientEmail, &q.ClientPhone, &q.Company, &q.Position,
		&q.ProjectName, &q.ProjectDescription, &q.ProjectType, &q.ProjectCategory,
		&q.Technologies, &q.Timeline, &q.Budget,
		&q.Features, &q.Integrations, &q.Platforms,
		&q.HasExistingSystem, &q.ExistingSystemDetails, &q.MainGoals, &q.TargetAudience,
		&q.Status, &q.ProposalValue, &q.ProposalTimeline, &q.ProposalNotes,
		&q.ProposalSentAt, &q.ProposalAcceptedAt, &q.Notes,
		&q.Consent, &q.Source, &q.Urgency, &q.CreatedAt, &q.UpdatedAt,
	)
	return q, err
}
