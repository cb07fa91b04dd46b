package routing_test

import (
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/routing"
)

func strPtr(s string) *string { return &s }

func TestDecide(t *testing.T) {
	docID := "7b1d2c9e-4f3a-4b8e-9f21-8c5d6e7f8a9b"

	tests := []struct {
		name     string
		in       routing.Input
		expected routing.Action
	}{
		{
			"high priority outranks every state rule",
			routing.Input{State: cases.StateWithProviderProcessing, Priority: 8.2, DaysInState: 1, SLADaysRemaining: 20},
			routing.ActionEscalateToAdvisor,
		},
		{
			"priority exactly at threshold does not escalate",
			routing.Input{State: cases.StateAwaitingClientSignature, Priority: 7.0, SLADaysRemaining: 20},
			routing.ActionClientCommunication,
		},
		{
			"awaiting signature chases the client",
			routing.Input{State: cases.StateAwaitingClientSignature, Priority: 3.0, DaysInState: 4, SLADaysRemaining: 26},
			routing.ActionClientCommunication,
		},
		{
			"pending document goes to verification",
			routing.Input{State: cases.StateDocumentAwaitingVerification, Priority: 2.0, PendingDocumentID: strPtr(docID), SLADaysRemaining: 25},
			routing.ActionDocumentVerification,
		},
		{
			"verification stage without a document just monitors",
			routing.Input{State: cases.StateDocumentAwaitingVerification, Priority: 2.0, SLADaysRemaining: 25},
			routing.ActionMonitor,
		},
		{
			"rejected documents chase the client",
			routing.Input{State: cases.StateClientDocumentsRejected, Priority: 4.0, SLADaysRemaining: 15},
			routing.ActionClientCommunication,
		},
		{
			"signed case submits to provider",
			routing.Input{State: cases.StateSignedReadyForProvider, Priority: 1.0, SLADaysRemaining: 28},
			routing.ActionProviderSubmission,
		},
		{
			"freshly submitted case monitors",
			routing.Input{State: cases.StateSubmittedToProvider, Priority: 3.0, DaysInState: 5, SLADaysRemaining: 20},
			routing.ActionMonitor,
		},
		{
			"submitted case past the follow-up window chases the provider",
			routing.Input{State: cases.StateSubmittedToProvider, Priority: 3.0, DaysInState: 6, SLADaysRemaining: 20},
			routing.ActionProviderFollowUp,
		},
		{
			"provider processing with tight SLA goes urgent",
			routing.Input{State: cases.StateWithProviderProcessing, Priority: 5.0, DaysInState: 2, SLADaysRemaining: 2},
			routing.ActionProviderUrgentFollowUp,
		},
		{
			"stale provider processing follows up",
			routing.Input{State: cases.StateWithProviderProcessing, Priority: 5.0, DaysInState: 16, SLADaysRemaining: 10},
			routing.ActionProviderFollowUp,
		},
		{
			"healthy provider processing monitors",
			routing.Input{State: cases.StateWithProviderProcessing, Priority: 5.0, DaysInState: 10, SLADaysRemaining: 10},
			routing.ActionMonitor,
		},
		{
			"incomplete response requests clarification",
			routing.Input{State: cases.StateProviderResponseIncomplete, Priority: 4.0, SLADaysRemaining: 9},
			routing.ActionProviderClarification,
		},
		{
			"received info notifies the client",
			routing.Input{State: cases.StateProviderInfoReceived, Priority: 2.0, SLADaysRemaining: 11},
			routing.ActionClientNotification,
		},
		{
			"closed case reports complete",
			routing.Input{State: cases.StateComplete, Priority: 0, SLADaysRemaining: 0},
			routing.ActionComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := routing.Decide(tt.in)
			if got.Action != tt.expected {
				t.Errorf("got %s, want %s", got.Action, tt.expected)
			}
		})
	}
}

func TestDecideCarriesDocumentID(t *testing.T) {
	docID := "doc-1"
	got := routing.Decide(routing.Input{
		State:             cases.StateDocumentAwaitingVerification,
		PendingDocumentID: &docID,
		SLADaysRemaining:  10,
	})

	if got.DocumentID == nil || *got.DocumentID != docID {
		t.Errorf("got %v, want %s", got.DocumentID, docID)
	}
}

func TestDecideIsPure(t *testing.T) {
	in := routing.Input{State: cases.StateSubmittedToProvider, DaysInState: 6, SLADaysRemaining: 20}

	first := routing.Decide(in)
	second := routing.Decide(in)

	if first != second {
		t.Errorf("same input produced different decisions: %v then %v", first, second)
	}
}

func TestDecideCase(t *testing.T) {
	got := routing.DecideCase(cases.Case{
		State:            cases.StateWithProviderProcessing,
		PriorityScore:    7.5,
		DaysInState:      3,
		SLADaysRemaining: 12,
	})

	if got.Action != routing.ActionEscalateToAdvisor {
		t.Errorf("got %s, want %s", got.Action, routing.ActionEscalateToAdvisor)
	}
}
