package documents_test

import (
	"slices"
	"testing"
	"time"

	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/ocr"
)

func confPtr(v float64) *float64 { return &v }

func TestEvaluateQuality(t *testing.T) {
	tests := []struct {
		name       string
		docType    string
		confidence *float64
		missingTag string
		passed     bool
		review     bool
		issues     []string
	}{
		{
			"clean pension statement passes",
			"pension statement", confPtr(92), "",
			true, false, nil,
		},
		{
			"very low confidence fails",
			"pension statement", confPtr(45), "",
			false, true, []string{documents.IssueVeryLowConfidence},
		},
		{
			"borderline confidence passes but flags review",
			"utility bill", confPtr(70), "",
			true, true, []string{documents.IssueLowConfidence},
		},
		{
			"exactly at fail threshold is review, not fail",
			"utility bill", confPtr(60), "",
			true, true, []string{documents.IssueLowConfidence},
		},
		{
			"exactly at review threshold passes clean",
			"utility bill", confPtr(75), "",
			true, false, nil,
		},
		{
			"passport held to stricter bar",
			"passport", confPtr(78), "",
			true, true, []string{documents.IssueIDLowConfidence},
		},
		{
			"passport at strict threshold passes clean",
			"Passport", confPtr(80), "",
			true, false, nil,
		},
		{
			"failing passport records both tags",
			"driving licence", confPtr(50), "",
			false, true, []string{documents.IssueIDLowConfidence, documents.IssueVeryLowConfidence},
		},
		{
			"engine unavailable fails with its tag",
			"pension statement", nil, ocr.StatusUnavailable.Tag(),
			false, true, []string{"ocr_unavailable"},
		},
		{
			"engine crash fails with the runtime tag",
			"pension statement", nil, ocr.StatusRuntimeError.Tag(),
			false, true, []string{"ocr_runtime_error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documents.EvaluateQuality(tt.docType, tt.confidence, tt.missingTag, nil)

			if got.Passed != tt.passed {
				t.Errorf("Passed: got %v, want %v", got.Passed, tt.passed)
			}
			if got.NeedsReview != tt.review {
				t.Errorf("NeedsReview: got %v, want %v", got.NeedsReview, tt.review)
			}
			if !slices.Equal(got.Issues, tt.issues) {
				t.Errorf("Issues: got %v, want %v", got.Issues, tt.issues)
			}
		})
	}
}

func TestEvaluateQualityPreservesExistingIssues(t *testing.T) {
	got := documents.EvaluateQuality("passport", confPtr(55), "", []string{"id_doc_low_confidence", "blurry_scan"})

	want := []string{"blurry_scan", "id_doc_low_confidence", "very_low_ocr_confidence"}
	if !slices.Equal(got.Issues, want) {
		t.Errorf("got %v, want %v", got.Issues, want)
	}
}

func TestJoinedIssues(t *testing.T) {
	if got := documents.JoinedIssues([]string{"a", "b"}); got != "a,b" {
		t.Errorf("got %q, want %q", got, "a,b")
	}
	if got := documents.JoinedIssues(nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestReprocessable(t *testing.T) {
	processed := time.Now().UTC()

	tests := []struct {
		name     string
		doc      documents.Document
		expected bool
	}{
		{"fresh upload", documents.Document{Status: documents.StatusPending}, true},
		{"verified is final", documents.Document{Status: documents.StatusVerified, ProcessedAt: &processed}, false},
		{"rejected re-runs evaluation", documents.Document{Status: documents.StatusRejected, ProcessedAt: &processed}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Reprocessable(); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
