// Package domain provides core business rules for the quotes bounded context.
package domain

import "softhouse_backend/platform/apperr"

// Status is a quote's position in the sales pipeline.
type Status string

const (
	StatusPending      Status = "pending"
	StatusInAnalysis   Status = "in_analysis"
	StatusProposalSent Status = "proposal_sent"
	StatusAccepted     Status = "accepted"
	StatusRejected     Status = "rejected"
	StatusCanceled     Status = "canceled"
)

// transitions is the adjacency table of the pipeline. Rejection and
// cancellation are reachable from any pre-acceptance stage; acceptance
// only after a proposal went out.
var transitions = map[Status][]Status{
	StatusPending:      {StatusInAnalysis, StatusRejected, StatusCanceled},
	StatusInAnalysis:   {StatusProposalSent, StatusRejected, StatusCanceled},
	StatusProposalSent: {StatusAccepted, StatusRejected, StatusCanceled},
	StatusAccepted:     {},
	StatusRejected:     {},
	StatusCanceled:     {},
}

// IsKnownStatus reports whether s is a member of the status enum.
func IsKnownStatus(s string) bool {
	_, ok := transitions[Status(s)]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && IsKnownStatus(string(s))
}

// CanTransition reports whether current may move to target.
func CanTransition(current, target Status) bool {
	for _, next := range transitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition validates a status change. It returns nil when the move is
// legal, a conflict error when it is not, and a bad request error when
// target is not a known status.
func Transition(current, target Status) error {
	if !IsKnownStatus(string(target)) {
		return apperr.BadRequest("unknown status: " + string(target))
	}
	if !CanTransition(current, target) {
		return apperr.Conflict("cannot transition quote from " + string(current) + " to " + string(target))
	}
	return nil
}
