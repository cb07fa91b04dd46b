package predict_test

import (
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/predict"
)

func TestAssessRisk(t *testing.T) {
	tests := []struct {
		name     string
		c        cases.Case
		expected string
	}{
		{
			"overdue SLA is high risk",
			cases.Case{State: cases.StateWithProviderProcessing, SLADaysRemaining: -2, DaysInState: 3},
			predict.RiskHigh,
		},
		{
			"high priority score is high risk",
			cases.Case{State: cases.StateAwaitingClientSignature, SLADaysRemaining: 20, PriorityScore: 7.5},
			predict.RiskHigh,
		},
		{
			"tight SLA is high risk",
			cases.Case{State: cases.StateSubmittedToProvider, SLADaysRemaining: 2, DaysInState: 1},
			predict.RiskHigh,
		},
		{
			"stalled case is medium risk",
			cases.Case{State: cases.StateAwaitingClientSignature, SLADaysRemaining: 20, DaysInState: 16},
			predict.RiskMedium,
		},
		{
			"approaching SLA is medium risk",
			cases.Case{State: cases.StateWithProviderProcessing, SLADaysRemaining: 6, DaysInState: 2},
			predict.RiskMedium,
		},
		{
			"healthy case is low risk",
			cases.Case{State: cases.StateSubmittedToProvider, SLADaysRemaining: 20, DaysInState: 3},
			predict.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := predict.Assess(tt.c)
			if got.Risk != tt.expected {
				t.Errorf("got %s (%v), want %s", got.Risk, got.Reasons, tt.expected)
			}
			if len(got.Reasons) == 0 {
				t.Error("every assessment should carry at least one reason")
			}
		})
	}
}

func TestEstimateCompletion(t *testing.T) {
	tests := []struct {
		name     string
		c        cases.Case
		expected int
	}{
		{
			"low risk uses the stage baseline",
			cases.Case{State: cases.StateWithProviderProcessing, SLADaysRemaining: 20, DaysInState: 2},
			7,
		},
		{
			"medium risk pads by three",
			cases.Case{State: cases.StateWithProviderProcessing, SLADaysRemaining: 6, DaysInState: 2},
			10,
		},
		{
			"high risk pads by seven",
			cases.Case{State: cases.StateWithProviderProcessing, SLADaysRemaining: -1, DaysInState: 2},
			14,
		},
		{
			"notification stage is nearly done",
			cases.Case{State: cases.StateProviderInfoReceived, SLADaysRemaining: 20, DaysInState: 0},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := predict.Assess(tt.c)
			if got.EstimatedDays != tt.expected {
				t.Errorf("got %d, want %d", got.EstimatedDays, tt.expected)
			}
		})
	}
}

func TestRecommendedActionVariesByRisk(t *testing.T) {
	calm := predict.Assess(cases.Case{State: cases.StateAwaitingClientSignature, SLADaysRemaining: 25, DaysInState: 2})
	urgent := predict.Assess(cases.Case{State: cases.StateAwaitingClientSignature, SLADaysRemaining: 1, DaysInState: 2})

	if calm.RecommendedAction == urgent.RecommendedAction {
		t.Errorf("expected risk level to change the recommendation, both %q", calm.RecommendedAction)
	}
}

func TestSelectCase(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		if _, ok := predict.SelectCase(nil); ok {
			t.Error("expected no selection from empty set")
		}
	})

	t.Run("highest priority wins", func(t *testing.T) {
		got, ok := predict.SelectCase([]cases.Case{
			{ID: "a", PriorityScore: 3.0, SLADaysRemaining: 5},
			{ID: "b", PriorityScore: 6.0, SLADaysRemaining: 20},
		})
		if !ok || got.ID != "b" {
			t.Errorf("got %s, want b", got.ID)
		}
	})

	t.Run("tightest SLA breaks priority ties", func(t *testing.T) {
		got, ok := predict.SelectCase([]cases.Case{
			{ID: "a", PriorityScore: 4.0, SLADaysRemaining: 15},
			{ID: "b", PriorityScore: 4.0, SLADaysRemaining: 3},
			{ID: "c", PriorityScore: 4.0, SLADaysRemaining: 9},
		})
		if !ok || got.ID != "b" {
			t.Errorf("got %s, want b", got.ID)
		}
	})
}
