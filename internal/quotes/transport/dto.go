package transport

import (
	"time"

	"github.com/google/uuid"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// SubmitQuoteRequest is the public quote-request form payload. Length and
// format rules live here as validator tags; closed-enum membership and the
// consent gate are checked by the service against the domain tables.
type SubmitQuoteRequest struct {
	ClientName  string `json:"clientName" validate:"required,min=2,max=100"`
	ClientEmail string `json:"clientEmail" validate:"required,email"`
	ClientPhone string `json:"clientPhone" validate:"omitempty,phone,max=30"`
	Company     string `json:"company" validate:"omitempty,max=100"`
	Position    string `json:"position" validate:"omitempty,max=100"`

	ProjectName        string   `json:"projectName" validate:"required,min=5,max=200"`
	ProjectDescription string   `json:"projectDescription" validate:"required,min=20,max=2000"`
	ProjectType        string   `json:"projectType" validate:"required"`
	ProjectCategory    string   `json:"projectCategory" validate:"required"`
	Technologies       []string `json:"technologies"`
	Timeline           string   `json:"timeline" validate:"required"`
	Budget             string   `json:"budget" validate:"required"`

	Features     []string `json:"features"`
	Integrations []string `json:"integrations"`
	Platforms    []string `json:"platforms"`

	HasExistingSystem     bool   `json:"hasExistingSystem"`
	ExistingSystemDetails string `json:"existingSystemDetails" validate:"omitempty,max=1000"`
	MainGoals             string `json:"mainGoals" validate:"omitempty,max=500"`
	TargetAudience        string `json:"targetAudience" validate:"omitempty,max=500"`

	Consent bool   `json:"consent"`
	Source  string `json:"source" validate:"omitempty,oneof=website referral social_media direct"`
	Urgency string `json:"urgency" validate:"omitempty,oneof=low medium high"`
}

// UpdateStatusRequest is the admin request to move a quote through the
// pipeline, optionally replacing the internal notes.
type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Note   *string `json:"note" validate:"omitempty,max=1000"`
}

// UpdateProposalRequest sets the commercial terms ahead of (or alongside)
// a proposal_sent transition.
type UpdateProposalRequest struct {
	ProposalValue    *float64 `json:"proposalValue" validate:"omitempty,gte=0"`
	ProposalTimeline *string  `json:"proposalTimeline" validate:"omitempty,max=200"`
	ProposalNotes    *string  `json:"proposalNotes" validate:"omitempty,max=2000"`
}

// ListQuotesRequest defines the query parameters for the admin list view.
type ListQuotesRequest struct {
	Status   string `form:"status"`
	Email    string `form:"email" validate:"omitempty,email"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// QuoteResponse is the full quote record as exposed to the admin panel.
type QuoteResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ClientPhone *string   `json:"clientPhone,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Position    *string   `json:"position,omitempty"`

	ProjectName        string   `json:"projectName"`
	ProjectDescription string   `json:"projectDescription"`
	ProjectType        string   `json:"projectType"`
	ProjectCategory    string   `json:"projectCategory"`
	Technologies       []string `json:"technologies"`
	Timeline           string   `json:"timeline"`
	Budget             string   `json:"budget"`

	Features     []string `json:"features"`
	Integrations []string `json:"integrations"`
	Platforms    []string `json:"platforms"`

	HasExistingSystem     bool    `json:"hasExistingSystem"`
	ExistingSystemDetails *string `json:"existingSystemDetails,omitempty"`
	MainGoals             *string `json:"mainGoals,omitempty"`
	TargetAudience        *string `json:"targetAudience,omitempty"`

	Status             string     `json:"status"`
	ProposalValue      *float64   `json:"proposalValue,omitempty"`
	ProposalTimeline   *string    `json:"proposalTimeline,omitempty"`
	ProposalNotes      *string    `json:"proposalNotes,omitempty"`
	ProposalSentAt     *time.Time `json:"proposalSentAt,omitempty"`
	ProposalAcceptedAt *time.Time `json:"proposalAcceptedAt,omitempty"`
	Notes              *string    `json:"notes,omitempty"`

	Consent bool   `json:"consent"`
	Source  string `json:"source"`
	Urgency string `json:"urgency"`

	// ResponseTime is the number of whole days between submission and the
	// proposal going out. Derived, never stored.
	ResponseTime *int `json:"responseTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitQuoteResponse is the acknowledgement returned to the public form.
type SubmitQuoteResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// QuoteListResponse is the paginated admin list.
type QuoteListResponse struct {
	Items      []QuoteResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// StatusCount is one bucket of the pipeline stats view.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// QuoteStatsResponse summarizes the pipeline for the admin dashboard.
type QuoteStatsResponse struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"byStatus"`
}
