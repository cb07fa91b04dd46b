package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/routing"
)

// OrchestrateNode scores the case, persists the priority outcome, and
// routes it to its next action. When the router calls for advisor
// intervention the escalation is stamped here and the graph exits without
// an autonomous chase.
func OrchestrateNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("orchestrate: %w", err)
		}

		outcome, err := rt.Priority.Apply(ctx, *c)
		if err != nil {
			return s, fmt.Errorf("%w: score case %s: %w", ErrOrchestrateFailed, c.ID, err)
		}

		refreshed, err := rt.Cases.Find(ctx, c.ID)
		if err != nil {
			return s, fmt.Errorf("%w: reload case %s: %w", ErrOrchestrateFailed, c.ID, err)
		}

		decision := routing.DecideCase(*refreshed)

		if decision.Action == routing.ActionEscalateToAdvisor {
			refreshed, err = rt.Cases.Escalate(ctx, refreshed.ID)
			if err != nil {
				return s, fmt.Errorf("%w: escalate case %s: %w", ErrOrchestrateFailed, c.ID, err)
			}
		}

		rt.Logger.InfoContext(
			ctx, "case routed",
			"case_id", refreshed.ID,
			"state", refreshed.State,
			"priority", outcome.Score,
			"sentiment", outcome.Sentiment,
			"action", decision.Action,
		)

		s = s.Set(KeyCase, *refreshed)
		s = s.Set(KeyPriority, *outcome)
		s = s.Set(KeyDecision, decision)
		return s, nil
	})
}

func extractCase(s state.State) (*cases.Case, error) {
	val, ok := s.Get(KeyCase)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyCase)
	}

	c, ok := val.(cases.Case)
	if !ok {
		return nil, fmt.Errorf("%s is not cases.Case", KeyCase)
	}

	return &c, nil
}

func extractDecision(s state.State) (routing.Decision, error) {
	val, ok := s.Get(KeyDecision)
	if !ok {
		return routing.Decision{}, fmt.Errorf("missing %s in state", KeyDecision)
	}

	d, ok := val.(routing.Decision)
	if !ok {
		return routing.Decision{}, fmt.Errorf("%s is not routing.Decision", KeyDecision)
	}

	return d, nil
}
