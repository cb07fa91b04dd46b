package prompts

import (
	"encoding/json"
	"slices"
)

// Kind identifies the communication a prompt drives.
type Kind string

// Valid communication kinds.
const (
	KindSignatureRequest      Kind = "signature_request"
	KindDocumentRequest       Kind = "document_request"
	KindFactFindRequest       Kind = "fact_find_request"
	KindPostAdviceReminder    Kind = "post_advice_reminder"
	KindStatusUpdate          Kind = "status_update"
	KindProviderSubmission    Kind = "provider_submission"
	KindProviderFollowUp      Kind = "provider_follow_up"
	KindProviderUrgent        Kind = "provider_urgent_follow_up"
	KindProviderClarification Kind = "provider_clarification"
	KindInsight               Kind = "insight"
	KindParseResponse         Kind = "parse_response"
)

var kinds = []Kind{
	KindSignatureRequest,
	KindDocumentRequest,
	KindFactFindRequest,
	KindPostAdviceReminder,
	KindStatusUpdate,
	KindProviderSubmission,
	KindProviderFollowUp,
	KindProviderUrgent,
	KindProviderClarification,
	KindInsight,
	KindParseResponse,
}

// Kinds returns the list of valid communication kinds.
func Kinds() []Kind {
	return kinds
}

// UnmarshalJSON validates that the decoded string is a known kind value.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Kind(raw)
	if !slices.Contains(kinds, v) {
		return ErrInvalidKind
	}
	*k = v
	return nil
}

// ParseKind validates a string as a known communication kind.
// Returns ErrInvalidKind if the value is not recognized.
func ParseKind(s string) (Kind, error) {
	v := Kind(s)
	if !slices.Contains(kinds, v) {
		return "", ErrInvalidKind
	}
	return v, nil
}
