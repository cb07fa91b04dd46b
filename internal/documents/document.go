// Package documents implements the document domain: client uploads, blob
// vault integration, and the verification pass that gates a document before
// it can progress an LOA case.
package documents

import "time"

// Verification status values for a document.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// Document represents an uploaded client document. OCRConfidence is nil
// until a verification pass has produced a score; Issues carries the
// accumulated quality issue tags as a comma-joined string.
type Document struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	LOAID         *string    `json:"loa_id"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	OCRConfidence *float64   `json:"ocr_confidence"`
	Issues        string     `json:"issues"`
	NeedsReview   bool       `json:"needs_review"`
	Filename      string     `json:"filename"`
	ContentType   string     `json:"content_type"`
	SizeBytes     int64      `json:"size_bytes"`
	StorageKey    string     `json:"storage_key"`
	ProcessedAt   *time.Time `json:"processed_at"`
	UploadedAt    time.Time  `json:"uploaded_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IssueList splits the accumulated issue tags into a slice, empty when no
// issues have been recorded.
func (d Document) IssueList() []string {
	return splitIssues(d.Issues)
}

// Verified reports whether the document cleared its verification pass.
func (d Document) Verified() bool {
	return d.Status == StatusVerified
}

// Reprocessable reports whether a verification pass may run. A verified
// document is final, but a rejected one re-runs the full evaluation on each
// resubmission attempt.
func (d Document) Reprocessable() bool {
	return d.ProcessedAt == nil || d.Status == StatusRejected
}

// CreateCommand carries the data needed to upload and register a new
// document. Data holds the raw file bytes; Type is the client-declared
// document type, normalized to lower case on registration.
type CreateCommand struct {
	Data        []byte
	ClientID    string
	Type        string
	Filename    string
	ContentType string
}
