package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kgnguhan/agentic-chaser/internal/prompts"
)

// SubmitNode pushes the signed letter of authority through the provider
// portal, advances the case to submitted, and records the covering
// communication.
func SubmitNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("submit: %w", err)
		}

		result, err := rt.Portal.SubmitLOA(ctx, *c)
		if err != nil {
			return s, fmt.Errorf("%w: case %s: %w", ErrSubmissionFailed, c.ID, err)
		}

		if _, err := rt.Messaging.ChaseProvider(ctx, *c, prompts.KindProviderSubmission); err != nil {
			rt.Logger.WarnContext(ctx, "submission cover message failed",
				"case_id", c.ID,
				"error", err,
			)
		}

		refreshed, err := rt.Cases.Find(ctx, c.ID)
		if err != nil {
			return s, fmt.Errorf("reload case %s after submission: %w", c.ID, err)
		}

		rt.Logger.InfoContext(ctx, "letter of authority submitted",
			"case_id", c.ID,
			"provider", c.ProviderName,
			"reference", result.Reference,
		)

		s = s.Set(KeyCase, *refreshed)
		s = s.Set(KeyPortalRef, result.Reference)
		return s, nil
	})
}
