package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Project is the database model for a case study.
type Project struct {
	ID           uuid.UUID
	Title        string
	Slug         string
	Summary      *string
	Description  *string
	ClientName   *string
	ProjectType  string
	Technologies []string
	WebsiteURL   *string
	Featured     bool
	Published    bool
	StartedAt    *time.Time
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListParams filters a project listing.
type ListParams struct {
	PublishedOnly bool
	FeaturedOnly  bool
	Offset        int
	Limit         int
}

// ProjectsRepository defines the persistence contract for case studies.
type ProjectsRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	GetBySlug(ctx context.Context, slug string) (Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]Project, int, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}
