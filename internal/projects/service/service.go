// Package service implements case study business logic.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"softhouse_backend/internal/projects/repository"
	"softhouse_backend/internal/projects/transport"
	quotesdomain "softhouse_backend/internal/quotes/domain"
	"softhouse_backend/platform/apperr"
	"softhouse_backend/platform/sanitize"
	"softhouse_backend/platform/validator"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
	maxSlugAttempts = 50
)

// Service provides business logic for project case studies.
type Service struct {
	repo repository.ProjectsRepository
	val  *validator.Validator
	now  func() time.Time
}

// New creates a new projects service.
func New(repo repository.ProjectsRepository, val *validator.Validator) *Service {
	return &Service{repo: repo, val: val, now: time.Now}
}

// SetClock overrides the time source. Test hook.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Create validates a new case study, generates a unique slug from the
// title, and persists the record.
func (s *Service) Create(ctx context.Context, req transport.CreateProjectRequest) (transport.ProjectResponse, error) {
	req.Title = strings.TrimSpace(req.Title)

	fields := validator.Fields(s.val.Struct(req))
	if req.ProjectType != "" && !quotesdomain.IsKnownProjectType(req.ProjectType) {
		fields = append(fields, apperr.FieldError{Field: "projectType", Message: "unknown project type"})
	}
	if len(fields) > 0 {
		return transport.ProjectResponse{}, apperr.Validation("validation failed", fields)
	}

	slug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return transport.ProjectResponse{}, err
	}

	now := s.now()
	project := repository.Project{
		ID:           uuid.New(),
		Title:        sanitize.Text(req.Title),
		Slug:         slug,
		Summary:      nilIfEmpty(sanitize.Text(strings.TrimSpace(req.Summary))),
		Description:  nilIfEmpty(sanitize.Text(strings.TrimSpace(req.Description))),
		ClientName:   nilIfEmpty(sanitize.Text(strings.TrimSpace(req.ClientName))),
		ProjectType:  req.ProjectType,
		Technologies: emptyIfNil(sanitize.Slice(req.Technologies)),
		WebsiteURL:   nilIfEmpty(strings.TrimSpace(req.WebsiteURL)),
		Featured:     req.Featured,
		Published:    req.Published,
		StartedAt:    req.StartedAt,
		DeliveredAt:  req.DeliveredAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, &project); err != nil {
		return transport.ProjectResponse{}, err
	}

	return toResponse(project), nil
}

// Update replaces a case study's content. The slug stays as created.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateProjectRequest) (transport.ProjectResponse, error) {
	req.Title = strings.TrimSpace(req.Title)

	fields := validator.Fields(s.val.Struct(req))
	if req.ProjectType != "" && !quotesdomain.IsKnownProjectType(req.ProjectType) {
		fields = append(fields, apperr.FieldError{Field: "projectType", Message: "unknown project type"})
	}
	if len(fields) > 0 {
		return transport.ProjectResponse{}, apperr.Validation("validation failed", fields)
	}

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProjectResponse{}, err
	}

	project.Title = sanitize.Text(req.Title)
	project.Summary = nilIfEmpty(sanitize.Text(strings.TrimSpace(req.Summary)))
	project.Description = nilIfEmpty(sanitize.Text(strings.TrimSpace(req.Description)))
	project.ClientName = nilIfEmpty(sanitize.Text(strings.TrimSpace(req.ClientName)))
	project.ProjectType = req.ProjectType
	project.Technologies = emptyIfNil(sanitize.Slice(req.Technologies))
	project.WebsiteURL = nilIfEmpty(strings.TrimSpace(req.WebsiteURL))
	project.Featured = req.Featured
	project.Published = req.Published
	project.StartedAt = req.StartedAt
	project.DeliveredAt = req.DeliveredAt
	project.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, &project); err != nil {
		return transport.ProjectResponse{}, err
	}

	return toResponse(project), nil
}

// GetByID fetches one project for the admin panel.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ProjectResponse{}, err
	}
	return toResponse(project), nil
}

// GetPublishedBySlug fetches one published project for the public site.
// Unpublished drafts are indistinguishable from missing records.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (transport.ProjectResponse, error) {
	project, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return transport.ProjectResponse{}, err
	}
	if !project.Published {
		return transport.ProjectResponse{}, apperr.NotFound("project not found")
	}
	return toResponse(project), nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// List returns all projects for the admin panel, newest first.
func (s *Service) List(ctx context.Context, req transport.ListProjectsRequest) (transport.ProjectListResponse, error) {
	return s.list(ctx, req, false)
}

// ListPublished returns published projects for the public site.
func (s *Service) ListPublished(ctx context.Context, req transport.ListProjectsRequest) (transport.ProjectListResponse, error) {
	return s.list(ctx, req, true)
}

func (s *Service) list(ctx context.Context, req transport.ListProjectsRequest, publishedOnly bool) (transport.ProjectListResponse, error) {
	if fields := validator.Fields(s.val.Struct(req)); len(fields) > 0 {
		return transport.ProjectListResponse{}, apperr.Validation("validation failed", fields)
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

	projects, total, err := s.repo.List(ctx, repository.ListParams{
		PublishedOnly: publishedOnly,
		FeaturedOnly:  req.Featured,
		Offset:        (page - 1) * pageSize,
		Limit:         pageSize,
	})
	if err != nil {
		return transport.ProjectListResponse{}, err
	}

	items := make([]transport.ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = toResponse(p)
	}

	return transport.ProjectListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// uniqueSlug derives a slug from the title and appends a numeric suffix
// until it no longer collides with an existing project.
func (s *Service) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := generateSlug(title)
	if base == "" {
		base = "projeto"
	}

	slug := base
	for attempt := 2; attempt <= maxSlugAttempts; attempt++ {
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, attempt)
	}

	return "", apperr.Conflict("could not generate a unique slug")
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// accentReplacer folds the accented characters common in Portuguese
// titles before the slug regex strips everything else.
var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// generateSlug creates a URL-friendly slug from a title.
func generateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = accentReplacer.Replace(slug)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// toResponse maps the database model to the API shape and computes the
// derived durationDays field.
func toResponse(p repository.Project) transport.ProjectResponse {
	resp := transport.ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Summary:      p.Summary,
		Description:  p.Description,
		ClientName:   p.ClientName,
		ProjectType:  p.ProjectType,
		Technologies: emptyIfNil(p.Technologies),
		WebsiteURL:   p.WebsiteURL,
		Featured:     p.Featured,
		Published:    p.Published,
		StartedAt:    p.StartedAt,
		DeliveredAt:  p.DeliveredAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	if p.StartedAt != nil && p.DeliveredAt != nil {
		days := int(p.DeliveredAt.Sub(*p.StartedAt).Hours() / 24)
		resp.DurationDays = &days
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
