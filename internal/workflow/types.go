package workflow

import (
	"time"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/routing"
)

const (
	KeyCase      = "case"
	KeyDecision  = "decision"
	KeyPriority  = "priority_outcome"
	KeyDocument  = "document"
	KeyMessageID = "message_id"
	KeyPortalRef = "portal_reference"
	KeyResult    = "chase_result"
)

// ChaseResult is the final output from a chase workflow execution.
type ChaseResult struct {
	CaseID             string         `json:"case_id"`
	Action             routing.Action `json:"action"`
	Priority           float64        `json:"priority"`
	Sentiment          string         `json:"sentiment"`
	Escalated          bool           `json:"escalated"`
	MessageID          *string        `json:"message_id,omitempty"`
	PortalReference    string         `json:"portal_reference,omitempty"`
	VerificationPassed *bool          `json:"verification_passed,omitempty"`
	FinalState         cases.State    `json:"final_state"`
	CompletedAt        time.Time      `json:"completed_at"`
}
