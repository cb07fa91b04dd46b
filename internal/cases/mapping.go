package cases

import (
	"net/url"
	"strconv"

	"github.com/kgnguhan/agentic-chaser/pkg/query"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "loa_cases", "lc").
	Project("id", "ID").
	Project("client_id", "ClientID").
	Project("provider_name", "ProviderName").
	Project("state", "State").
	Project("days_in_state", "DaysInState").
	Project("sla_days", "SLADays").
	Project("sla_days_remaining", "SLADaysRemaining").
	Project("priority_score", "PriorityScore").
	Project("pension_value", "PensionValue").
	Project("document_quality_score", "DocQualityScore").
	Project("signature_verified", "SignatureVerified").
	Project("needs_advisor_intervention", "NeedsIntervention").
	Project("sla_overdue", "SLAOverdue").
	Project("escalated_at", "EscalatedAt").
	Project("pending_document_id", "PendingDocumentID").
	Project("reference_number", "ReferenceNumber").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "clients", "c", "INNER JOIN", "lc.client_id = c.id").
	Project("name", "ClientName")

var defaultSort = query.SortField{
	Field:      "PriorityScore",
	Descending: true,
}

// Filters contains optional filtering criteria for case queries.
// Nil fields are ignored.
type Filters struct {
	ClientID          *string  `json:"client_id,omitempty"`
	ProviderName      *string  `json:"provider_name,omitempty"`
	State             *string  `json:"state,omitempty"`
	NeedsIntervention *bool    `json:"needs_advisor_intervention,omitempty"`
	SLAOverdue        *bool    `json:"sla_overdue,omitempty"`
	MinPriority       *float64 `json:"min_priority,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.
		WhereEquals("ClientID", f.ClientID).
		WhereEquals("ProviderName", f.ProviderName).
		WhereEquals("State", f.State).
		WhereEquals("NeedsIntervention", f.NeedsIntervention).
		WhereEquals("SLAOverdue", f.SLAOverdue)

	if f.MinPriority != nil {
		b.WhereAtLeast("PriorityScore", f.MinPriority)
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("client_id"); c != "" {
		f.ClientID = &c
	}

	if p := values.Get("provider_name"); p != "" {
		f.ProviderName = &p
	}

	if s := values.Get("state"); s != "" {
		f.State = &s
	}

	if ni := values.Get("needs_advisor_intervention"); ni != "" {
		if v, err := strconv.ParseBool(ni); err == nil {
			f.NeedsIntervention = &v
		}
	}

	if so := values.Get("sla_overdue"); so != "" {
		if v, err := strconv.ParseBool(so); err == nil {
			f.SLAOverdue = &v
		}
	}

	if mp := values.Get("min_priority"); mp != "" {
		if v, err := strconv.ParseFloat(mp, 64); err == nil {
			f.MinPriority = &v
		}
	}

	return f
}

func scanCase(s repository.Scanner) (Case, error) {
	var c Case
	err := s.Scan(
		&c.ID,
		&c.ClientID,
		&c.ProviderName,
		&c.State,
		&c.DaysInState,
		&c.SLADays,
		&c.SLADaysRemaining,
		&c.PriorityScore,
		&c.PensionValue,
		&c.DocQualityScore,
		&c.SignatureVerified,
		&c.NeedsIntervention,
		&c.SLAOverdue,
		&c.EscalatedAt,
		&c.PendingDocumentID,
		&c.ReferenceNumber,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.ClientName,
	)
	c.StateLabel = c.State.Label()
	return c, err
}
