// Package dashboard assembles the advisor-facing read views: the priority
// queue, case and client detail panels, and per-provider workload summaries.
// It composes the domain systems rather than querying tables of its own.
package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/factfind"
	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
	"github.com/kgnguhan/agentic-chaser/internal/scoring"
)

// defaultDocQuality stands in for cases that have no scored documents yet,
// so the breakdown matches what the priority engine would assume.
const defaultDocQuality = 75.0

// QueueEntry is one row of the priority queue: the open case plus who the
// next action rests with.
type QueueEntry struct {
	CaseID            string  `json:"case_id"`
	ClientID          string  `json:"client_id"`
	ClientName        string  `json:"client_name"`
	ProviderName      string  `json:"provider_name"`
	State             string  `json:"state"`
	StateLabel        string  `json:"state_label"`
	PriorityScore     float64 `json:"priority_score"`
	DaysInState       int     `json:"days_in_state"`
	SLADaysRemaining  int     `json:"sla_days_remaining"`
	NeedsIntervention bool    `json:"needs_advisor_intervention"`
	ChaseType         string  `json:"chase_type"`
}

// PriorityBreakdown lists the inputs behind a case's priority score.
type PriorityBreakdown struct {
	DaysInState     int     `json:"days_in_state"`
	SLAOverdueDays  int     `json:"sla_overdue_days"`
	ClientAge55Plus bool    `json:"client_age_55_plus"`
	DocQualityScore float64 `json:"document_quality_score"`
}

// CaseDetail is the case detail panel: the case, its client, and the
// priority inputs. Client is nil when the profile could not be loaded.
type CaseDetail struct {
	Case     cases.Case        `json:"case"`
	Client   *clients.Client   `json:"client"`
	Priority PriorityBreakdown `json:"priority_breakdown"`
}

// ProviderSummary aggregates a provider's open caseload by stage.
type ProviderSummary struct {
	Provider      string         `json:"provider"`
	PendingCases  int            `json:"pending_cases"`
	Stages        map[string]int `json:"stages"`
	StagesSummary string         `json:"stages_summary"`
}

// ProviderDetail is a provider's open cases ordered by priority.
type ProviderDetail struct {
	Provider     string       `json:"provider"`
	PendingCases int          `json:"pending_cases"`
	Cases        []QueueEntry `json:"cases"`
}

// ClientSummary is one row of the client table: open caseload and document
// standing at a glance.
type ClientSummary struct {
	ClientID         string         `json:"client_id"`
	Name             string         `json:"name"`
	PendingCases     int            `json:"pending_cases"`
	Stages           map[string]int `json:"stages"`
	StagesSummary    string         `json:"stages_summary"`
	PendingDocuments int            `json:"pending_documents"`
	TotalDocuments   int            `json:"total_documents"`
}

// ClientDetail is the client detail panel: the full profile, their cases,
// documents, follow-up items, and fact-find standing.
type ClientDetail struct {
	Client           clients.Client       `json:"client"`
	Cases            []QueueEntry         `json:"cases"`
	Documents        []documents.Document `json:"documents"`
	PostAdviceItems  []postadvice.Item    `json:"post_advice_items"`
	FactFind         factfind.Status      `json:"fact_find_status"`
	PendingCases     int                  `json:"pending_cases"`
	PendingDocuments int                  `json:"pending_documents"`
}

func queueEntry(c cases.Case) QueueEntry {
	return QueueEntry{
		CaseID:            c.ID,
		ClientID:          c.ClientID,
		ClientName:        c.ClientName,
		ProviderName:      c.ProviderName,
		State:             string(c.State),
		StateLabel:        c.State.Label(),
		PriorityScore:     c.PriorityScore,
		DaysInState:       c.DaysInState,
		SLADaysRemaining:  c.SLADaysRemaining,
		NeedsIntervention: c.NeedsIntervention,
		ChaseType:         c.State.ChaseType(),
	}
}

func breakdown(c cases.Case, client *clients.Client) PriorityBreakdown {
	quality := defaultDocQuality
	if c.DocQualityScore != nil {
		quality = *c.DocQualityScore
	}

	senior := false
	if client != nil {
		senior = client.Age >= scoring.SeniorAgeFloor
	}

	return PriorityBreakdown{
		DaysInState:     c.DaysInState,
		SLAOverdueDays:  max(0, -c.SLADaysRemaining),
		ClientAge55Plus: senior,
		DocQualityScore: quality,
	}
}

// stageCounts tallies open cases by state label and renders the compact
// "stage: n" summary line used in the tables.
func stageCounts(open []cases.Case) (map[string]int, string) {
	counts := make(map[string]int, len(open))
	for _, c := range open {
		counts[c.State.Label()]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s: %d", label, counts[label]))
	}

	return counts, strings.Join(parts, ", ")
}

// pendingDocuments counts uploads that are not yet verified or that a
// reviewer still needs to look at.
func pendingDocuments(docs []documents.Document) int {
	pending := 0
	for _, d := range docs {
		if !d.Verified() || d.NeedsReview {
			pending++
		}
	}
	return pending
}
