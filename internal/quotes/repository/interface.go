package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Quote is the database model for a quote request.
type Quote struct {
	ID          uuid.UUID `db:"id"`
	ClientName  string    `db:"client_name"`
	ClientEmail string    `db:"client_email"`
	ClientPhone *string   `db:"client_phone"`
	Company     *string   `db:"company"`
	Position    *string   `db:"position"`

	ProjectName        string   `db:"project_name"`
	ProjectDescription string   `db:"project_description"`
	ProjectType        string   `db:"project_type"`
	ProjectCategory    string   `db:"project_category"`
	Technologies       []string `db:"technologies"`
	Timeline           string   `db:"timeline"`
	Budget             string   `db:"budget"`

	Features     []string `db:"features"`
	Integrations []string `db:"integrations"`
	Platforms    []string `db:"platforms"`

	HasExistingSystem     bool    `db:"has_existing_system"`
	ExistingSystemDetails *string `db:"existing_system_details"`
	MainGoals             *string `db:"main_goals"`
	TargetAudience        *string `db:"target_audience"`

	Status             string     `db:"status"`
	ProposalValue      *float64   `db:"proposal_value"`
	ProposalTimeline   *string    `db:"proposal_timeline"`
	ProposalNotes      *string    `db:"proposal_notes"`
	ProposalSentAt     *time.Time `db:"proposal_sent_at"`
	ProposalAcceptedAt *time.Time `db:"proposal_accepted_at"`
	Notes              *string    `db:"notes"`

	Consent bool   `db:"consent"`
	Source  string `db:"source"`
	Urgency string `db:"urgency"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// StatusPatch is the partial update a status transition writes. Timestamp
// pointers are written only when non-nil, so an already-set stamp is
// never overwritten.
type StatusPatch struct {
	Status             string
	ProposalSentAt     *time.Time
	ProposalAcceptedAt *time.Time
	Notes              *string
	UpdatedAt          time.Time
}

// ProposalPatch updates the commercial terms of a quote.
type ProposalPatch struct {
	ProposalValue    *float64
	ProposalTimeline *string
	ProposalNotes    *string
	UpdatedAt        time.Time
}

// ListParams filters and paginates the admin list view.
type ListParams struct {
	Status *string
	Email  *string
	Offset int
	Limit  int
}

// QuotesRepository is the persistence boundary of the quotes module.
type QuotesRepository interface {
	Create(ctx context.Context, quote *Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (Quote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, patch StatusPatch) (Quote, error)
	UpdateProposal(ctx context.Context, id uuid.UUID, patch ProposalPatch) (Quote, error)
	List(ctx context.Context, params ListParams) ([]Quote, int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}
