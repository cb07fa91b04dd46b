package postadvice_test

import (
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
)

func TestValidStatus(t *testing.T) {
	lifecycle := []string{
		postadvice.StatusPending,
		postadvice.StatusSent,
		postadvice.StatusOpened,
		postadvice.StatusPartiallyCompleted,
		postadvice.StatusCompleted,
		postadvice.StatusRejected,
		postadvice.StatusResubmitted,
	}
	for _, status := range lifecycle {
		if !postadvice.ValidStatus(status) {
			t.Errorf("%q should be accepted", status)
		}
	}

	for _, status := range []string{"outstanding", "in_progress", "done", ""} {
		if postadvice.ValidStatus(status) {
			t.Errorf("%q should be rejected", status)
		}
	}
}
