package postadvice

import (
	"net/url"

	"github.com/kgnguhan/agentic-chaser/pkg/query"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "post_advice_items", "pa").
	Project("id", "ID").
	Project("client_id", "ClientID").
	Project("description", "Description").
	Project("status", "Status").
	Project("days_outstanding", "DaysOutstanding").
	Project("days_until_deadline", "DaysUntilDeadline").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "clients", "c", "INNER JOIN", "pa.client_id = c.id").
	Project("name", "ClientName")

// reminderSort orders the chase queue: nearest deadline first, undated
// items last, longest outstanding breaking ties.
var reminderSort = []query.SortField{
	{Field: "DaysUntilDeadline", NullsLast: true},
	{Field: "DaysOutstanding", Descending: true},
}

var defaultSort = query.SortField{
	Field:      "DaysOutstanding",
	Descending: true,
}

// Filters contains optional filtering criteria for follow-up queries.
type Filters struct {
	ClientID *string `json:"client_id,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ClientID", f.ClientID).
		WhereEquals("Status", f.Status)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("client_id"); c != "" {
		f.ClientID = &c
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	return f
}

func scanItem(s repository.Scanner) (Item, error) {
	var i Item
	err := s.Scan(
		&i.ID,
		&i.ClientID,
		&i.Description,
		&i.Status,
		&i.DaysOutstanding,
		&i.DaysUntilDeadline,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.ClientName,
	)
	return i, err
}
