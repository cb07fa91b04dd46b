package documents

import (
	"net/url"
	"strconv"

	"github.com/kgnguhan/agentic-chaser/pkg/query"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "documents", "d").
	Project("id", "ID").
	Project("client_id", "ClientID").
	Project("loa_id", "LOAID").
	Project("type", "Type").
	Project("status", "Status").
	Project("ocr_confidence", "OCRConfidence").
	Project("issues", "Issues").
	Project("needs_review", "NeedsReview").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("storage_key", "StorageKey").
	Project("processed_at", "ProcessedAt").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for document queries.
// Nil fields are ignored.
type Filters struct {
	ClientID    *string `json:"client_id,omitempty"`
	LOAID       *string `json:"loa_id,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
	NeedsReview *bool   `json:"needs_review,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ClientID", f.ClientID).
		WhereEquals("LOAID", f.LOAID).
		WhereEquals("Type", f.Type).
		WhereEquals("Status", f.Status).
		WhereEquals("NeedsReview", f.NeedsReview)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("client_id"); c != "" {
		f.ClientID = &c
	}

	if l := values.Get("loa_id"); l != "" {
		f.LOAID = &l
	}

	if t := values.Get("type"); t != "" {
		f.Type = &t
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if nr := values.Get("needs_review"); nr != "" {
		if v, err := strconv.ParseBool(nr); err == nil {
			f.NeedsReview = &v
		}
	}

	return f
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.ClientID,
		&d.LOAID,
		&d.Type,
		&d.Status,
		&d.OCRConfidence,
		&d.Issues,
		&d.NeedsReview,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.StorageKey,
		&d.ProcessedAt,
		&d.UploadedAt,
		&d.UpdatedAt,
	)
	return d, err
}
