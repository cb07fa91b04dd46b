// Package factfind tracks fact-find completeness: the set of document
// categories an advisor needs from a client before advice can proceed, and
// the chase queue of clients still missing some of them.
package factfind

import (
	"strings"

	"github.com/kgnguhan/agentic-chaser/internal/documents"
)

// Categories is the ordered list of document categories a complete
// fact-find requires.
var Categories = []string{
	"Proof of identity (passport or driving licence)",
	"Proof of address (utility bill, council tax, or bank statement)",
	"Pension statements",
	"Investment valuations",
	"Protection policy details",
	"Recent payslips",
	"Latest P60",
}

// categoryIndex maps a normalized document type to its category position.
var categoryIndex = map[string]int{
	"passport":             0,
	"driving licence":      0,
	"driving license":      0,
	"utility bill":         1,
	"council tax":          1,
	"bank statement":       1,
	"pension statement":    2,
	"investment statement": 3,
	"protection policy":    4,
	"payslip":              5,
	"p60":                  6,
}

// Status summarizes a client's fact-find progress.
type Status struct {
	ClientID           string   `json:"client_id"`
	ReceivedCount      int      `json:"received_count"`
	RequiredCount      int      `json:"required_count"`
	ReceivedCategories []string `json:"received_categories"`
	MissingDocuments   []string `json:"missing_documents"`
}

// Complete reports whether every category has been received.
func (s Status) Complete() bool {
	return s.ReceivedCount == s.RequiredCount
}

// QueueEntry is one client in the fact-find chase queue.
type QueueEntry struct {
	ClientID     string   `json:"client_id"`
	ClientName   string   `json:"client_name"`
	MissingCount int      `json:"missing_count"`
	Missing      []string `json:"missing_documents"`
}

// CategoryForType resolves a document type to its category position.
func CategoryForType(docType string) (int, bool) {
	idx, ok := categoryIndex[strings.ToLower(strings.TrimSpace(docType))]
	return idx, ok
}

// ComputeStatus derives fact-find progress from a client's documents. A
// category is satisfied only by a verified document; pending and rejected
// uploads do not count, and unrecognized types are ignored.
func ComputeStatus(clientID string, docs []documents.Document) Status {
	received := make([]bool, len(Categories))

	for _, doc := range docs {
		if doc.Status != documents.StatusVerified {
			continue
		}
		if idx, ok := CategoryForType(doc.Type); ok {
			received[idx] = true
		}
	}

	status := Status{
		ClientID:           clientID,
		RequiredCount:      len(Categories),
		ReceivedCategories: make([]string, 0),
		MissingDocuments:   make([]string, 0),
	}

	for i, category := range Categories {
		if received[i] {
			status.ReceivedCount++
			status.ReceivedCategories = append(status.ReceivedCategories, category)
		} else {
			status.MissingDocuments = append(status.MissingDocuments, category)
		}
	}

	return status
}
