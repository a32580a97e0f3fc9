// Package service implements contact message business logic.
package service

import (
	"context"
	"strings"
	"time"

	"softhouse_backend/internal/contact/repository"
	"softhouse_backend/internal/contact/transport"
	"softhouse_backend/internal/events"
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

// Service provides business logic for the contact inbox.
type Service struct {
	repo     repository.MessagesRepository
	val      *validator.Validator
	eventBus events.Bus // optional, nil means no events
	now      func() time.Time
}

// New creates a new contact service.
func New(repo repository.MessagesRepository, val *validator.Validator) *Service {
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

// Submit validates, sanitizes, and persists a public contact message.
func (s *Service) Submit(ctx context.Context, req transport.SubmitMessageRequest) (transport.MessageResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = phone.NormalizeE164(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if fields := validator.Fields(s.val.Struct(req)); len(fields) > 0 {
		return transport.MessageResponse{}, apperr.Validation("validation failed", fields)
	}

	req.Name = sanitize.Text(req.Name)
	req.Subject = sanitize.Text(req.Subject)
	req.Message = sanitize.Text(req.Message)

	msg := repository.Message{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     nilIfEmpty(req.Phone),
		Subject:   nilIfEmpty(req.Subject),
		Message:   req.Message,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, &msg); err != nil {
		return transport.MessageResponse{}, err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.ContactMessageReceived{
			BaseEvent: events.NewBaseEvent(),
			MessageID: msg.ID,
			Email:     msg.Email,
		})
	}

	return toResponse(msg), nil
}

// List returns messages newest-first, optionally unread only.
func (s *Service) List(ctx context.Context, req transport.ListMessagesRequest) (transport.MessageListResponse, error) {
	if fields := validator.Fields(s.val.Struct(req)); len(fields) > 0 {
		return transport.MessageListResponse{}, apperr.Validation("validation failed", fields)
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

	messages, total, err := s.repo.List(ctx, repository.ListParams{
		UnreadOnly: req.Unread,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	})
	if err != nil {
		return transport.MessageListResponse{}, err
	}

	items := make([]transport.MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = toResponse(m)
	}

	return transport.MessageListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// MarkRead flags a message as handled.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (transport.MessageResponse, error) {
	msg, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return transport.MessageResponse{}, err
	}
	return toResponse(msg), nil
}

func toResponse(m repository.Message) transport.MessageResponse {
	return transport.MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
