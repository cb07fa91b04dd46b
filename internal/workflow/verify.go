package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// VerifyNode runs the pending document through the verification pass and
// records the processed document in the workflow state for the
// post-verification step.
func VerifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("verify: %w", err)
		}

		decision, err := extractDecision(s)
		if err != nil {
			return s, fmt.Errorf("verify: %w", err)
		}

		if decision.DocumentID == nil {
			return s, fmt.Errorf("%w: case %s has no pending document", ErrVerificationFault, c.ID)
		}

		doc, err := rt.Documents.Process(ctx, *decision.DocumentID)
		if err != nil {
			return s, fmt.Errorf("%w: process document %s: %w", ErrVerificationFault, *decision.DocumentID, err)
		}

		rt.Logger.InfoContext(ctx, "document verified",
			"case_id", c.ID,
			"document_id", doc.ID,
			"status", doc.Status,
			"issues", doc.Issues,
		)

		s = s.Set(KeyDocument, *doc)
		return s, nil
	})
}

// PostVerifyNode moves the case forward on a pass or back to rejected on a
// fail, based on the processed document's verdict.
func PostVerifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("post-verify: %w", err)
		}

		doc, err := extractDocument(s)
		if err != nil {
			return s, fmt.Errorf("post-verify: %w", err)
		}

		passed := doc.Verified()

		resolved, err := rt.Cases.ResolveVerification(ctx, c.ID, passed)
		if err != nil {
			return s, fmt.Errorf("%w: resolve case %s: %w", ErrVerificationFault, c.ID, err)
		}

		rt.Logger.InfoContext(ctx, "verification resolved",
			"case_id", c.ID,
			"document_id", doc.ID,
			"passed", passed,
			"state", resolved.State,
		)

		s = s.Set(KeyCase, *resolved)
		return s, nil
	})
}
