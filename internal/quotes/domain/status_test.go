package domain

import (
	"testing"

	"softhouse_backend/platform/apperr"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusInAnalysis, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusProposalSent, false},
		{StatusPending, StatusAccepted, false},

		{StatusInAnalysis, StatusProposalSent, true},
		{StatusInAnalysis, StatusRejected, true},
		{StatusInAnalysis, StatusCanceled, true},
		{StatusInAnalysis, StatusAccepted, false},
		{StatusInAnalysis, StatusPending, false},

		{StatusProposalSent, StatusAccepted, true},
		{StatusProposalSent, StatusRejected, true},
		{StatusProposalSent, StatusCanceled, true},
		{StatusProposalSent, StatusInAnalysis, false},

		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusPending, false},
		{StatusRejected, StatusInAnalysis, false},
		{StatusCanceled, StatusPending, false},

		// No self-transitions.
		{StatusPending, StatusPending, false},
		{StatusProposalSent, StatusProposalSent, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}

		err := Transition(tc.from, tc.to)
		if tc.allowed && err != nil {
			t.Errorf("Transition(%s, %s) unexpected error: %v", tc.from, tc.to, err)
		}
		if !tc.allowed && !apperr.Is(err, apperr.KindConflict) {
			t.Errorf("Transition(%s, %s) expected conflict, got %v", tc.from, tc.to, err)
		}
	}
}

func TestTransitionUnknownTarget(t *testing.T) {
	err := Transition(StatusPending, Status("approved"))
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("expected bad request for unknown status, got %v", err)
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []Status{StatusAccepted, StatusRejected, StatusCanceled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}

	open := []Status{StatusPending, StatusInAnalysis, StatusProposalSent}
	for _, s := range open {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}

	if Status("bogus").IsTerminal() {
		t.Error("unknown status must not report terminal")
	}
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range []string{"pending", "in_analysis", "proposal_sent", "accepted", "rejected", "canceled"} {
		if !IsKnownStatus(s) {
			t.Errorf("%s should be a known status", s)
		}
	}
	for _, s := range []string{"", "Pending", "done", "PROPOSAL_SENT"} {
		if IsKnownStatus(s) {
			t.Errorf("%s should not be a known status", s)
		}
	}
}
