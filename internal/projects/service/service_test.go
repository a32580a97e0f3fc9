package service

import (
	"context"
	"testing"
	"time"

	"softhouse_backend/internal/projects/repository"
	"softhouse_backend/internal/projects/transport"
	"softhouse_backend/platform/apperr"
	"softhouse_backend/platform/validator"

	"github.com/google/uuid"
)

type fakeRepo struct {
	projects []repository.Project
}

func (f *fakeRepo) Create(_ context.Context, project *repository.Project) error {
	f.projects = append(f.projects, *project)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return repository.Project{}, apperr.NotFound("project not found")
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (repository.Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return repository.Project{}, apperr.NotFound("project not found")
}

func (f *fakeRepo) Update(_ context.Context, project *repository.Project) error {
	for i, p := range f.projects {
		if p.ID == project.ID {
			f.projects[i] = *project
			return nil
		}
	}
	return apperr.NotFound("project not found")
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("project not found")
}

func (f *fakeRepo) List(_ context.Context, params repository.ListParams) ([]repository.Project, int, error) {
	var out []repository.Project
	for _, p := range f.projects {
		if params.PublishedOnly && !p.Published {
			continue
		}
		if params.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func newService(t *testing.T) (*Service, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	return New(repo, validator.New()), repo
}

func validRequest() transport.CreateProjectRequest {
	return transport.CreateProjectRequest{
		Title:       "Portal de Gestão Médica",
		Summary:     "Plataforma de agendamento para clínicas.",
		ProjectType: "Sistema web",
		Published:   true,
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Portal de Gestão Médica", "portal-de-gestao-medica"},
		{"E-commerce  —  Moda & Estilo", "e-commerce-moda-estilo"},
		{"  Aplicação Única!  ", "aplicacao-unica"},
		{"123 já", "123-ja"},
	}
	for _, tt := range tests {
		if got := generateSlug(tt.title); got != tt.want {
			t.Errorf("generateSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestCreateGeneratesUniqueSlug(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.Slug != "portal-de-gestao-medica" {
		t.Errorf("slug = %q", first.Slug)
	}

	second, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.Slug != "portal-de-gestao-medica-2" {
		t.Errorf("collision slug = %q, want numeric suffix", second.Slug)
	}
}

func TestCreateRejectsUnknownProjectType(t *testing.T) {
	svc, _ := newService(t)

	req := validRequest()
	req.ProjectType = "Blockchain"
	_, err := svc.Create(context.Background(), req)
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation", apperr.GetKind(err))
	}
}

func TestDurationDays(t *testing.T) {
	svc, _ := newService(t)

	started := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	delivered := started.AddDate(0, 0, 45)
	req := validRequest()
	req.StartedAt = &started
	req.DeliveredAt = &delivered

	resp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.DurationDays == nil || *resp.DurationDays != 45 {
		t.Errorf("durationDays = %v, want 45", resp.DurationDays)
	}

	noDates, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if noDates.DurationDays != nil {
		t.Errorf("durationDays = %v, want nil without dates", noDates.DurationDays)
	}
}

func TestGetPublishedBySlugHidesDrafts(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	req := validRequest()
	req.Published = false
	draft, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.GetPublishedBySlug(ctx, draft.Slug); apperr.GetKind(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not found for draft", apperr.GetKind(err))
	}
}

func TestUpdateKeepsSlug(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, transport.UpdateProjectRequest{
		Title:       "Novo Título Completamente Diferente",
		ProjectType: "Sistema web",
		Published:   true,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Slug != created.Slug {
		t.Errorf("slug changed on update: %q -> %q", created.Slug, updated.Slug)
	}
	if updated.Title != "Novo Título Completamente Diferente" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestListPublishedFeaturedFilter(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	now := time.Now()
	repo.projects = []repository.Project{
		{ID: uuid.New(), Title: "a", Slug: "a", ProjectType: "Sistema web", Published: true, Featured: true, CreatedAt: now},
		{ID: uuid.New(), Title: "b", Slug: "b", ProjectType: "Sistema web", Published: true, CreatedAt: now},
		{ID: uuid.New(), Title: "c", Slug: "c", ProjectType: "Sistema web", Featured: true, CreatedAt: now},
	}

	resp, err := svc.ListPublished(ctx, transport.ListProjectsRequest{Featured: true})
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Slug != "a" {
		t.Errorf("featured published filter returned %+v", resp.Items)
	}
}
