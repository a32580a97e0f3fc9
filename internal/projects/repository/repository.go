package repository

import (
	"context"
	"errors"

	"softhouse_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectNotFoundMsg = "project not found"

const projectColumns = `
	id, title, slug, summary, description, client_name, project_type,
	technologies, website_url, featured, published,
	started_at, delivered_at, created_at, updated_at`

// Repository provides Postgres-backed persistence for case studies.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new projects repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ ProjectsRepository = (*Repository)(nil)

// Create inserts a new project.
func (r *Repository) Create(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (
			id, title, slug, summary, description, client_name, project_type,
			technologies, website_url, featured, published,
			started_at, delivered_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	if _, err := r.pool.Exec(ctx, query,
		project.ID, project.Title, project.Slug, project.Summary, project.Description, project.ClientName, project.ProjectType,
		project.Technologies, project.WebsiteURL, project.Featured, project.Published,
		project.StartedAt, project.DeliveredAt, project.CreatedAt, project.UpdatedAt,
	); err != nil {
		return apperr.Internal("failed to store project", err).WithOp("projects.Create")
	}

	return nil
}

// GetByID fetches a single project.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Project, error) {
	query := `SELECT` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound(projectNotFoundMsg)
		}
		return Project{}, apperr.Internal("failed to load project", err).WithOp("projects.GetByID")
	}
	return project, nil
}

// GetBySlug fetches a single project by its public URL slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (Project, error) {
	query := `SELECT` + projectColumns + ` FROM projects WHERE slug = $1`

	project, err := scanProject(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound(projectNotFoundMsg)
		}
		return Project{}, apperr.Internal("failed to load project", err).WithOp("projects.GetBySlug")
	}
	return project, nil
}

// Update replaces a project's content.
func (r *Repository) Update(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects SET
			title = $2, summary = $3, description = $4, client_name = $5, project_type = $6,
			technologies = $7, website_url = $8, featured = $9, published = $10,
			started_at = $11, delivered_at = $12, updated_at = $13
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		project.ID, project.Title, project.Summary, project.Description, project.ClientName, project.ProjectType,
		project.Technologies, project.WebsiteURL, project.Featured, project.Published,
		project.StartedAt, project.DeliveredAt, project.UpdatedAt,
	)
	if err != nil {
		return apperr.Internal("failed to update project", err).WithOp("projects.Update")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(projectNotFoundMsg)
	}

	return nil
}

// Delete removes a project.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return apperr.Internal("failed to delete project", err).WithOp("projects.Delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(projectNotFoundMsg)
	}
	return nil
}

// List returns projects newest-first with the total count for pagination.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Project, int, error) {
	where := ""
	if params.PublishedOnly {
		where += " AND published = TRUE"
	}
	if params.FeaturedOnly {
		where += " AND featured = TRUE"
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM projects WHERE 1=1` + where
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, apperr.Internal("failed to count projects", err).WithOp("projects.List")
	}

	query := `SELECT` + projectColumns + ` FROM projects WHERE 1=1` + where +
		` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, apperr.Internal("failed to list projects", err).WithOp("projects.List")
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, apperr.Internal("failed to scan project", err).WithOp("projects.List")
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperr.Internal("failed to read projects", err).WithOp("projects.List")
	}

	return projects, total, nil
}

// SlugExists reports whether a slug is already taken.
func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1)`
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, apperr.Internal("failed to check slug", err).WithOp("projects.SlugExists")
	}
	return exists, nil
}

func scanProject(row pgx.Row) (Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Description, &p.ClientName, &p.ProjectType,
		&p.Technologies, &p.WebsiteURL, &p.Featured, &p.Published,
		&p.StartedAt, &p.DeliveredAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
