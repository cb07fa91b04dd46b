package communications

import (
	"net/url"

	"github.com/kgnguhan/agentic-chaser/pkg/query"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "messages", "m").
	Project("id", "ID").
	Project("client_id", "ClientID").
	Project("case_id", "CaseID").
	Project("direction", "Direction").
	Project("channel", "Channel").
	Project("body", "Body").
	Project("sentiment", "Sentiment").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for message queries.
type Filters struct {
	ClientID  *string `json:"client_id,omitempty"`
	CaseID    *string `json:"case_id,omitempty"`
	Direction *string `json:"direction,omitempty"`
	Sentiment *string `json:"sentiment,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ClientID", f.ClientID).
		WhereEquals("CaseID", f.CaseID).
		WhereEquals("Direction", f.Direction).
		WhereEquals("Sentiment", f.Sentiment)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("client_id"); c != "" {
		f.ClientID = &c
	}

	if cs := values.Get("case_id"); cs != "" {
		f.CaseID = &cs
	}

	if d := values.Get("direction"); d != "" {
		f.Direction = &d
	}

	if s := values.Get("sentiment"); s != "" {
		f.Sentiment = &s
	}

	return f
}

func scanMessage(s repository.Scanner) (Message, error) {
	var m Message
	err := s.Scan(
		&m.ID,
		&m.ClientID,
		&m.CaseID,
		&m.Direction,
		&m.Channel,
		&m.Body,
		&m.Sentiment,
		&m.CreatedAt,
	)
	return m, err
}
