// Package routing decides the next workflow action for a case. The router
// is a pure function over a snapshot of case attributes; callers perform
// whatever side effects the decision demands.
package routing

import "github.com/kgnguhan/agentic-chaser/internal/cases"

// Action identifies the next workflow step for a case.
type Action string

const (
	ActionEscalateToAdvisor      Action = "escalate_to_advisor"
	ActionClientCommunication    Action = "client_communication"
	ActionDocumentVerification   Action = "document_verification"
	ActionProviderSubmission     Action = "provider_submission"
	ActionProviderFollowUp       Action = "provider_follow_up"
	ActionProviderUrgentFollowUp Action = "provider_urgent_follow_up"
	ActionProviderClarification  Action = "provider_clarification"
	ActionClientNotification     Action = "client_notification"
	ActionMonitor                Action = "monitor"
	ActionComplete               Action = "complete"
)

// Decision thresholds. Priority above EscalationThreshold short-circuits
// every state rule; the day counts govern provider chasing cadence.
const (
	EscalationThreshold = 7.0
	FollowUpAfterDays   = 5
	UrgentSLADays       = 3
	StaleProviderDays   = 15
)

// Input is the case snapshot the router examines.
type Input struct {
	State             cases.State
	Priority          float64
	DaysInState       int
	SLADaysRemaining  int
	PendingDocumentID *string
}

// Decision is the router's explicit verdict. DocumentID is set only for
// document verification, naming the document to verify.
type Decision struct {
	Action     Action  `json:"action"`
	DocumentID *string `json:"document_id,omitempty"`
}

// Decide returns the next action for a case. Rules are evaluated in
// declaration order and the first match wins: escalation outranks every
// state rule, then each state maps to its chase or progression action.
func Decide(in Input) Decision {
	if in.Priority > EscalationThreshold {
		return Decision{Action: ActionEscalateToAdvisor}
	}

	switch in.State {
	case cases.StateAwaitingClientSignature:
		return Decision{Action: ActionClientCommunication}

	case cases.StateDocumentAwaitingVerification:
		if in.PendingDocumentID != nil {
			return Decision{Action: ActionDocumentVerification, DocumentID: in.PendingDocumentID}
		}
		return Decision{Action: ActionMonitor}

	case cases.StateClientDocumentsRejected:
		return Decision{Action: ActionClientCommunication}

	case cases.StateSignedReadyForProvider:
		return Decision{Action: ActionProviderSubmission}

	case cases.StateSubmittedToProvider:
		if in.DaysInState > FollowUpAfterDays {
			return Decision{Action: ActionProviderFollowUp}
		}
		return Decision{Action: ActionMonitor}

	case cases.StateWithProviderProcessing:
		if in.SLADaysRemaining < UrgentSLADays {
			return Decision{Action: ActionProviderUrgentFollowUp}
		}
		if in.DaysInState > StaleProviderDays {
			return Decision{Action: ActionProviderFollowUp}
		}
		return Decision{Action: ActionMonitor}

	case cases.StateProviderResponseIncomplete:
		return Decision{Action: ActionProviderClarification}

	case cases.StateProviderInfoReceived:
		return Decision{Action: ActionClientNotification}

	case cases.StateComplete:
		return Decision{Action: ActionComplete}
	}

	return Decision{Action: ActionMonitor}
}

// DecideCase builds the router input from a case record.
func DecideCase(c cases.Case) Decision {
	return Decide(Input{
		State:             c.State,
		Priority:          c.PriorityScore,
		DaysInState:       c.DaysInState,
		SLADaysRemaining:  c.SLADaysRemaining,
		PendingDocumentID: c.PendingDocumentID,
	})
}
