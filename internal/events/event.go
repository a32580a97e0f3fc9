// Package events provides domain event definitions for decoupled
// communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"softhouse_backend/platform/events"
	"softhouse_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience.
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions.
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Quotes Domain Events
// =============================================================================

// QuoteSubmitted is published when a public quote request passes
// validation and is persisted.
type QuoteSubmitted struct {
	BaseEvent
	QuoteID     uuid.UUID `json:"quoteId"`
	ClientEmail string    `json:"clientEmail"`
	ProjectType string    `json:"projectType"`
}

func (e QuoteSubmitted) EventName() string { return "quotes.submitted" }

// QuoteStatusChanged is published after a successful pipeline transition.
type QuoteStatusChanged struct {
	BaseEvent
	QuoteID    uuid.UUID `json:"quoteId"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
}

func (e QuoteStatusChanged) EventName() string { return "quotes.status_changed" }

// =============================================================================
// Contact Domain Events
// =============================================================================

// ContactMessageReceived is published when a public contact form
// submission is persisted.
type ContactMessageReceived struct {
	BaseEvent
	MessageID uuid.UUID `json:"messageId"`
	Email     string    `json:"email"`
}

func (e ContactMessageReceived) EventName() string { return "contact.message_received" }
