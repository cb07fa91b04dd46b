package scoring_test

import (
	"context"
	"math"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/scoring"
)

func TestWeightedScore(t *testing.T) {
	scorer := scoring.NewWeightedScorer()

	tests := []struct {
		name     string
		features scoring.Features
		expected float64
	}{
		{
			"fresh case with clean documents",
			scoring.Features{DaysInState: 0, SLAOverdueDays: 0, ClientAge: 40, DocQuality: 100},
			0,
		},
		{
			"days in state accumulate",
			scoring.Features{DaysInState: 10, ClientAge: 40, DocQuality: 100},
			1.2,
		},
		{
			"overdue days weigh heaviest",
			scoring.Features{SLAOverdueDays: 4, ClientAge: 40, DocQuality: 100},
			1.4,
		},
		{
			"poor documents add pressure",
			scoring.Features{ClientAge: 40, DocQuality: 50},
			2.0,
		},
		{
			"senior clients get the uplift",
			scoring.Features{ClientAge: 55, DocQuality: 100},
			1.0,
		},
		{
			"just under the senior floor gets none",
			scoring.Features{ClientAge: 54, DocQuality: 100},
			0,
		},
		{
			"extreme backlog clamps at ten",
			scoring.Features{DaysInState: 200, SLAOverdueDays: 90, ClientAge: 70, DocQuality: 0},
			10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scorer.Score(context.Background(), tt.features)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestWeightedScoreIgnoresNegativeOverdue(t *testing.T) {
	scorer := scoring.NewWeightedScorer()

	ahead, err := scorer.Score(context.Background(), scoring.Features{SLAOverdueDays: -10, ClientAge: 30, DocQuality: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	onTime, err := scorer.Score(context.Background(), scoring.Features{SLAOverdueDays: 0, ClientAge: 30, DocQuality: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ahead != onTime {
		t.Errorf("negative overdue should score like zero: got %v and %v", ahead, onTime)
	}
}
