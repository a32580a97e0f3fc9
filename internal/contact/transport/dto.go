package transport

import (
	"time"

	"github.com/google/uuid"
)

// SubmitMessageRequest is the public contact form payload.
type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone,max=30"`
	Subject string `json:"subject" validate:"omitempty,max=150"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// ListMessagesRequest defines the query parameters for the admin inbox.
type ListMessagesRequest struct {
	Unread   bool `form:"unread"`
	Page     int  `form:"page" validate:"omitempty,min=1"`
	PageSize int  `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// MessageResponse is a contact message as exposed to the admin panel.
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitMessageResponse is the acknowledgement returned to the public form.
type SubmitMessageResponse struct {
	ID uuid.UUID `json:"id"`
}

// MessageListResponse is the paginated admin inbox.
type MessageListResponse struct {
	Items      []MessageResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
