package clients

import (
	"net/url"
	"strconv"

	"github.com/kgnguhan/agentic-chaser/pkg/query"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "clients", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("email", "Email").
	Project("age", "Age").
	Project("employment_type", "EmploymentType").
	Project("annual_income", "AnnualIncome").
	Project("risk_profile", "RiskProfile").
	Project("communication_preference", "CommunicationPreference").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

// Filters contains optional filtering criteria for client queries.
type Filters struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	MinAge *int    `json:"min_age,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Name", f.Name).
		WhereContains("Email", f.Email).
		WhereAtLeast("Age", f.MinAge)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if e := values.Get("email"); e != "" {
		f.Email = &e
	}

	if a := values.Get("min_age"); a != "" {
		if v, err := strconv.Atoi(a); err == nil {
			f.MinAge = &v
		}
	}

	return f
}

func scanClient(s repository.Scanner) (Client, error) {
	var c Client
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Age,
		&c.EmploymentType,
		&c.AnnualIncome,
		&c.RiskProfile,
		&c.CommunicationPreference,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
