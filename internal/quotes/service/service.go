package service

import (
	"context"
	"strings"
	"time"

	"softhouse_backend/internal/events"
	"softhouse_backend/internal/quotes/domain"
	"softhouse_backend/internal/quotes/repository"
	"softhouse_backend/internal/quotes/transport"
	"softhouse_backend/platform/apperr"
	"softhouse_backend/platform/phone"
	"softhouse_backend/platform/sanitize"
	"softhouse_backend/platform/validator"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Service provides business logic for the quote pipeline.
type Service struct {
	repo     repository.QuotesRepository
	val      *validator.Validator
	eventBus events.Bus // optional, nil means no events
	now      func() time.Time
}

// New creates a new quotes service.
func New(repo repository.QuotesRepository, val *validator.Validator) *Service {
	return &Service{repo: repo, val: val, now: time.Now}
}

// SetEventBus injects the domain event bus.
func (s *Service) SetEventBus(bus events.Bus) {
	s.eventBus = bus
}

// SetClock overrides the time source. Test hook.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Submit validates, sanitizes, and persists a public quote request. The
// created quote always starts in pending. All field violations are
// returned at once so the form can render every error.
func (s *Service) Submit(ctx context.Context, req transport.SubmitQuoteRequest) (transport.QuoteResponse, error) {
	req = normalize(req)

	fields := validator.Fields(s.val.Struct(req))
	fields = append(fields, checkEnums(req)...)
	if !req.Consent {
		fields = append(fields, apperr.FieldError{Field: "consent", Message: "consent is required to submit a quote request"})
	}
	if len(fields) > 0 {
		return transport.QuoteResponse{}, apperr.Validation("validation failed", fields)
	}

	req = sanitizeRequest(req)

	now := s.now()
	quote := repository.Quote{
		ID:          uuid.New(),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: nilIfEmpty(req.ClientPhone),
		Company:     nilIfEmpty(req.Company),
		Position:    nilIfEmpty(req.Position),

		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
		ProjectType:        req.ProjectType,
		ProjectCategory:    req.ProjectCategory,
		Technologies:       emptyIfNil(req.Technologies),
		Timeline:           req.Timeline,
		Budget:             req.Budget,

		Features:     emptyIfNil(req.Features),
		Integrations: emptyIfNil(req.Integrations),
		Platforms:    emptyIfNil(req.Platforms),

		HasExistingSystem:     req.HasExistingSystem,
		ExistingSystemDetails: nilIfEmpty(req.ExistingSystemDetails),
		MainGoals:             nilIfEmpty(req.MainGoals),
		TargetAudience:        nilIfEmpty(req.TargetAudience),

		Status:  string(domain.StatusPending),
		Consent: req.Consent,
		Source:  req.Source,
		Urgency: req.Urgency,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, &quote); err != nil {
		return transport.QuoteResponse{}, err
	}

	s.publish(ctx, events.QuoteSubmitted{
		BaseEvent:   events.NewBaseEvent(),
		QuoteID:     quote.ID,
		ClientEmail: quote.ClientEmail,
		ProjectType: quote.ProjectType,
	})

	return toResponse(quote), nil
}

// GetByID fetches one quote for the admin panel.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.QuoteResponse, error) {
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.QuoteResponse{}, err
	}
	return toResponse(quote), nil
}

// TransitionStatus moves a quote through the pipeline state machine.
// Illegal moves are rejected before anything is written. Entering
// proposal_sent or accepted stamps the corresponding timestamp, but only
// the first time the quote reaches that status.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, req transport.UpdateStatusRequest) (transport.QuoteResponse, error) {
	if fields := validator.Fields(s.val.Struct(req)); len(fields) > 0 {
		return transport.QuoteResponse{}, apperr.Validation("validation failed", fields)
	}

	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.QuoteResponse{}, err
	}

	current := domain.Status(quote.Status)
	target := domain.Status(req.Status)
	if err := domain.Transition(current, target); err != nil {
		return transport.QuoteResponse{}, err
	}

	now := s.now()
	patch := repository.StatusPatch{
		Status:    string(target),
		Notes:     sanitize.TextPtr(req.Note),
		UpdatedAt: now,
	}
	if target == domain.StatusProposalSent && quote.ProposalSentAt == nil {
		patch.ProposalSentAt = &now
	}
	if target == domain.StatusAccepted && quote.ProposalAcceptedAt == nil {
		patch.ProposalAcceptedAt = &now
	}

	updated, err := s.repo.UpdateStatus(ctx, id, patch)
	if err != nil {
		return transport.QuoteResponse{}, err
	}

	s.publish(ctx, events.QuoteStatusChanged{
		BaseEvent:  events.NewBaseEvent(),
		QuoteID:    id,
		FromStatus: string(current),
		ToStatus:   string(target),
	})

	return toResponse(updated), nil
}

// UpdateProposal sets the commercial terms on a quote.
func (s *Service) UpdateProposal(ctx context.Context, id uuid.UUID, req transport.UpdateProposalRequest) (transport.QuoteResponse, error) {
	if fields := validator.Fields(s.val.Struct(req)); len(fields) > 0 {
		return transport.QuoteResponse{}, apperr.Validation("validation failed", fields)
	}

	updated, err := s.repo.UpdateProposal(ctx, id, repository.ProposalPatch{
		ProposalValue:    req.ProposalValue,
		ProposalTimeline: sanitize.TextPtr(req.ProposalTimeline),
		ProposalNotes:    sanitize.TextPtr(req.ProposalNotes),
		UpdatedAt:        s.now(),
	})
	if err != nil {
		return transport.QuoteResponse{}, err
	}

	return toResponse(updated), nil
}

// List returns quotes newest-first, optionally filtered by status or
// client email, capped at maxPageSize per page.
func (s *Service) List(ctx context.Context, req transport.ListQuotesRequest) (transport.QuoteListResponse, error) {
	fields := validator.Fields(s.val.Struct(req))
	if req.Status != "" && !domain.IsKnownStatus(req.Status) {
		fields = append(fields, apperr.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(fields) > 0 {
		return transport.QuoteListResponse{}, apperr.Validation("validation failed", fields)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := repository.ListParams{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}
	if req.Status != "" {
		params.Status = &req.Status
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		params.Email = &email
	}

	quotes, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.QuoteListResponse{}, err
	}

	items := make([]transport.QuoteResponse, len(quotes))
	for i, q := range quotes {
		items[i] = toResponse(q)
	}

	totalPages := (total + pageSize - 1) / pageSize
	return transport.QuoteListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Stats summarizes the pipeline for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (transport.QuoteStatsResponse, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return transport.QuoteStatsResponse{}, err
	}

	// Stable ordering: pipeline order, zero buckets included.
	ordered := []domain.Status{
		domain.StatusPending,
		domain.StatusInAnalysis,
		domain.StatusProposalSent,
		domain.StatusAccepted,
		domain.StatusRejected,
		domain.StatusCanceled,
	}

	resp := transport.QuoteStatsResponse{ByStatus: make([]transport.StatusCount, 0, len(ordered))}
	for _, status := range ordered {
		count := counts[string(status)]
		resp.Total += count
		resp.ByStatus = append(resp.ByStatus, transport.StatusCount{Status: string(status), Count: count})
	}
	return resp, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, event)
	}
}

// normalize trims every free-text field and lowercases the email before
// validation, so length rules apply to what will actually be stored.
func normalize(req transport.SubmitQuoteRequest) transport.SubmitQuoteRequest {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientEmail = strings.ToLower(strings.TrimSpace(req.ClientEmail))
	req.ClientPhone = phone.NormalizeE164(req.ClientPhone)
	req.Company = strings.TrimSpace(req.Company)
	req.Position = strings.TrimSpace(req.Position)
	req.ProjectName = strings.TrimSpace(req.ProjectName)
	req.ProjectDescription = strings.TrimSpace(req.ProjectDescription)
	req.ExistingSystemDetails = strings.TrimSpace(req.ExistingSystemDetails)
	req.MainGoals = strings.TrimSpace(req.MainGoals)
	req.TargetAudience = strings.TrimSpace(req.TargetAudience)

	if req.Source == "" {
		req.Source = domain.SourceWebsite
	}
	if req.Urgency == "" {
		req.Urgency = domain.UrgencyMedium
	}

	return req
}

// checkEnums validates closed-enum membership against the domain tables.
func checkEnums(req transport.SubmitQuoteRequest) []apperr.FieldError {
	var fields []apperr.FieldError
	if req.ProjectType != "" && !domain.IsKnownProjectType(req.ProjectType) {
		fields = append(fields, apperr.FieldError{Field: "projectType", Message: "unknown project type"})
	}
	if req.ProjectCategory != "" && !domain.IsKnownProjectCategory(req.ProjectCategory) {
		fields = append(fields, apperr.FieldError{Field: "projectCategory", Message: "unknown project category"})
	}
	if req.Timeline != "" && !domain.IsKnownTimeline(req.Timeline) {
		fields = append(fields, apperr.FieldError{Field: "timeline", Message: "unknown timeline"})
	}
	if req.Budget != "" && !domain.IsKnownBudget(req.Budget) {
		fields = append(fields, apperr.FieldError{Field: "budget", Message: "unknown budget range"})
	}
	return fields
}

// sanitizeRequest strips executable markup from every free-text field,
// including the string arrays. Runs after validation; sanitization only
// removes characters, so the length rules still hold.
func sanitizeRequest(req transport.SubmitQuoteRequest) transport.SubmitQuoteRequest {
	req.ClientName = sanitize.Text(req.ClientName)
	req.Company = sanitize.Text(req.Company)
	req.Position = sanitize.Text(req.Position)
	req.ProjectName = sanitize.Text(req.ProjectName)
	req.ProjectDescription = sanitize.Text(req.ProjectDescription)
	req.Technologies = sanitize.Slice(req.Technologies)
	req.Features = sanitize.Slice(req.Features)
	req.Integrations = sanitize.Slice(req.Integrations)
	req.Platforms = sanitize.Slice(req.Platforms)
	req.ExistingSystemDetails = sanitize.Text(req.ExistingSystemDetails)
	req.MainGoals = sanitize.Text(req.MainGoals)
	req.TargetAudience = sanitize.Text(req.TargetAudience)
	return req
}

// toResponse maps the database model to the API shape and computes the
// derived responseTime field.
func toResponse(q repository.Quote) transport.QuoteResponse {
	resp := transport.QuoteResponse{
		ID:          q.ID,
		ClientName:  q.ClientName,
		ClientEmail: q.ClientEmail,
		ClientPhone: q.ClientPhone,
		Company:     q.Company,
		Position:    q.Position,

		ProjectName:        q.ProjectName,
		ProjectDescription: q.ProjectDescription,
		ProjectType:        q.ProjectType,
		ProjectCategory:    q.ProjectCategory,
		Technologies:       emptyIfNil(q.Technologies),
		Timeline:           q.Timeline,
		Budget:             q.Budget,

		Features:     emptyIfNil(q.Features),
		Integrations: emptyIfNil(q.Integrations),
		Platforms:    emptyIfNil(q.Platforms),

		HasExistingSystem:     q.HasExistingSystem,
		ExistingSystemDetails: q.ExistingSystemDetails,
		MainGoals:             q.MainGoals,
		TargetAudience:        q.TargetAudience,

		Status:             q.Status,
		ProposalValue:      q.ProposalValue,
		ProposalTimeline:   q.ProposalTimeline,
		ProposalNotes:      q.ProposalNotes,
		ProposalSentAt:     q.ProposalSentAt,
		ProposalAcceptedAt: q.ProposalAcceptedAt,
		Notes:              q.Notes,

		Consent: q.Consent,
		Source:  q.Source,
		Urgency: q.Urgency,

		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}

	if q.ProposalSentAt != nil {
		days := int(q.ProposalSentAt.Sub(q.CreatedAt).Hours() / 24)
		resp.ResponseTime = &days
	}

	return resp
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
