package documents

import (
	"slices"
	"strings"
)

// Confidence thresholds for the verification rules. Identity documents are
// held to a stricter bar than the general review threshold.
const (
	FailThreshold     = 60.0
	ReviewThreshold   = 75.0
	IDStrictThreshold = 80.0
)

// Quality issue tags recorded by the verification rules.
const (
	IssueVeryLowConfidence = "very_low_ocr_confidence"
	IssueLowConfidence     = "low_ocr_confidence"
	IssueIDLowConfidence   = "id_doc_low_confidence"
)

var idDocumentTypes = map[string]bool{
	"passport":        true,
	"driving licence": true,
	"driving license": true,
}

// Evaluation is the outcome of applying the verification rules to a
// document's confidence score.
type Evaluation struct {
	Passed      bool
	NeedsReview bool
	Issues      []string
}

// EvaluateQuality applies the verification rules. A nil confidence always
// fails and records missingTag, which names why no score was available.
// Existing issue tags are preserved; the returned issue list is sorted and
// de-duplicated.
func EvaluateQuality(docType string, confidence *float64, missingTag string, existing []string) Evaluation {
	eval := Evaluation{Passed: true}
	issues := slices.Clone(existing)

	switch {
	case confidence == nil:
		eval.Passed = false
		eval.NeedsReview = true
		if missingTag != "" {
			issues = append(issues, missingTag)
		}
	case *confidence < FailThreshold:
		eval.Passed = false
		eval.NeedsReview = true
		issues = append(issues, IssueVeryLowConfidence)
	case *confidence < ReviewThreshold:
		eval.NeedsReview = true
		issues = append(issues, IssueLowConfidence)
	}

	if confidence != nil &&
		idDocumentTypes[strings.ToLower(docType)] &&
		*confidence < IDStrictThreshold {
		eval.NeedsReview = true
		issues = append(issues, IssueIDLowConfidence)
	}

	slices.Sort(issues)
	eval.Issues = slices.Compact(issues)
	return eval
}

// JoinedIssues renders an issue list into the persisted comma-joined form.
func JoinedIssues(issues []string) string {
	return strings.Join(issues, ",")
}

func splitIssues(joined string) []string {
	if joined == "" {
		return nil
	}

	parts := strings.Split(joined, ",")
	issues := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			issues = append(issues, trimmed)
		}
	}
	return issues
}
