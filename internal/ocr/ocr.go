// Package ocr extracts a legibility confidence score from uploaded
// documents. The evaluator reports its own availability as part of the
// result so callers can distinguish a low-confidence scan from an engine
// that never ran.
package ocr

import "context"

// Status describes how the confidence extraction attempt ended.
type Status string

const (
	// StatusOK means a confidence score was produced.
	StatusOK Status = "ok"
	// StatusUnavailable means no OCR engine is configured.
	StatusUnavailable Status = "unavailable"
	// StatusRuntimeError means the engine was invoked but failed.
	StatusRuntimeError Status = "runtime_error"
	// StatusNotRun means the document was never submitted to the engine.
	StatusNotRun Status = "not_run"
)

// Tag returns the quality issue tag recorded when no confidence score is
// available. Empty for StatusOK.
func (s Status) Tag() string {
	switch s {
	case StatusUnavailable:
		return "ocr_unavailable"
	case StatusRuntimeError:
		return "ocr_runtime_error"
	case StatusNotRun:
		return "no_ocr_run"
	default:
		return ""
	}
}

// Result is the outcome of a confidence extraction. Confidence is nil unless
// Status is StatusOK, and ranges 0-100 when present.
type Result struct {
	Confidence *float64
	Status     Status
}

// Evaluator produces a legibility confidence score for a stored document.
// Implementations return engine failures in the Result status rather than
// as an error; the error return is reserved for infrastructure faults such
// as an unreadable blob.
type Evaluator interface {
	Evaluate(ctx context.Context, storageKey, contentType string) (Result, error)
}

type disabled struct{}

// Disabled returns an Evaluator that always reports StatusUnavailable, used
// when no vision model is configured.
func Disabled() Evaluator {
	return disabled{}
}

func (disabled) Evaluate(context.Context, string, string) (Result, error) {
	return Result{Status: StatusUnavailable}, nil
}
