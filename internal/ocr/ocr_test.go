package ocr_test

import (
	"context"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/ocr"
)

func TestStatusTag(t *testing.T) {
	tests := []struct {
		status   ocr.Status
		expected string
	}{
		{ocr.StatusOK, ""},
		{ocr.StatusUnavailable, "ocr_unavailable"},
		{ocr.StatusRuntimeError, "ocr_runtime_error"},
		{ocr.StatusNotRun, "no_ocr_run"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Tag(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDisabledEvaluator(t *testing.T) {
	result, err := ocr.Disabled().Evaluate(context.Background(), "clients/any/doc.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != ocr.StatusUnavailable {
		t.Errorf("got %s, want %s", result.Status, ocr.StatusUnavailable)
	}
	if result.Confidence != nil {
		t.Errorf("expected nil confidence, got %v", *result.Confidence)
	}
}
