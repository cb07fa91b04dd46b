// Package cases implements the LOA case domain: the case lifecycle state
// machine, typed transitions, and chase bookkeeping for pension transfer
// authority requests.
package cases

import "time"

// Case represents a Letter of Authority case tracked through its lifecycle.
// DaysInState and SLADaysRemaining advance once per scheduler tick;
// SLADaysRemaining may go negative once the provider deadline has passed.
type Case struct {
	ID                string     `json:"id"`
	ClientID          string     `json:"client_id"`
	ClientName        string     `json:"client_name"`
	ProviderName      string     `json:"provider_name"`
	State             State      `json:"state"`
	StateLabel        string     `json:"state_label"`
	DaysInState       int        `json:"days_in_state"`
	SLADays           int        `json:"sla_days"`
	SLADaysRemaining  int        `json:"sla_days_remaining"`
	PriorityScore     float64    `json:"priority_score"`
	PensionValue      float64    `json:"pension_value"`
	DocQualityScore   *float64   `json:"document_quality_score"`
	SignatureVerified bool       `json:"signature_verified"`
	NeedsIntervention bool       `json:"needs_advisor_intervention"`
	SLAOverdue        bool       `json:"sla_overdue"`
	EscalatedAt       *time.Time `json:"escalated_at"`
	PendingDocumentID *string    `json:"pending_document_id"`
	ReferenceNumber   *string    `json:"reference_number"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateCommand carries the data needed to open a new case. SLADays defaults
// to 15 when zero; the SLA countdown starts from the same value.
type CreateCommand struct {
	ClientID     string  `json:"client_id"`
	ProviderName string  `json:"provider_name"`
	PensionValue float64 `json:"pension_value"`
	SLADays      int     `json:"sla_days"`
}

// PriorityUpdate carries the scoring outcome persisted after each
// orchestration pass. Escalate is sticky: once set on a case it is never
// cleared by a later pass.
type PriorityUpdate struct {
	Score      float64
	Escalate   bool
	SLAOverdue bool
}
