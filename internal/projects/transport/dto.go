package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectRequest is the admin payload for a new case study.
type CreateProjectRequest struct {
	Title        string     `json:"title" validate:"required,min=3,max=150"`
	Summary      string     `json:"summary" validate:"omitempty,max=300"`
	Description  string     `json:"description" validate:"omitempty,max=5000"`
	ClientName   string     `json:"clientName" validate:"omitempty,max=100"`
	ProjectType  string     `json:"projectType" validate:"required"`
	Technologies []string   `json:"technologies"`
	WebsiteURL   string     `json:"websiteUrl" validate:"omitempty,url,max=300"`
	Featured     bool       `json:"featured"`
	Published    bool       `json:"published"`
	StartedAt    *time.Time `json:"startedAt"`
	DeliveredAt  *time.Time `json:"deliveredAt"`
}

// UpdateProjectRequest replaces a case study's content. The slug is kept
// stable so published URLs never break.
type UpdateProjectRequest struct {
	Title        string     `json:"title" validate:"required,min=3,max=150"`
	Summary      string     `json:"summary" validate:"omitempty,max=300"`
	Description  string     `json:"description" validate:"omitempty,max=5000"`
	ClientName   string     `json:"clientName" validate:"omitempty,max=100"`
	ProjectType  string     `json:"projectType" validate:"required"`
	Technologies []string   `json:"technologies"`
	WebsiteURL   string     `json:"websiteUrl" validate:"omitempty,url,max=300"`
	Featured     bool       `json:"featured"`
	Published    bool       `json:"published"`
	StartedAt    *time.Time `json:"startedAt"`
	DeliveredAt  *time.Time `json:"deliveredAt"`
}

// ListProjectsRequest defines the query parameters for project lists.
type ListProjectsRequest struct {
	Featured bool `form:"featured"`
	Page     int  `form:"page" validate:"omitempty,min=1"`
	PageSize int  `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// ProjectResponse is a case study as exposed by the API.
type ProjectResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Summary      *string    `json:"summary,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ClientName   *string    `json:"clientName,omitempty"`
	ProjectType  string     `json:"projectType"`
	Technologies []string   `json:"technologies"`
	WebsiteURL   *string    `json:"websiteUrl,omitempty"`
	Featured     bool       `json:"featured"`
	Published    bool       `json:"published"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`

	// DurationDays spans started_at to delivered_at. Derived, never stored.
	DurationDays *int `json:"durationDays,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectListResponse is a paginated project list.
type ProjectListResponse struct {
	Items      []ProjectResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
