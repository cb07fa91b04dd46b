package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/prompts"
	"github.com/kgnguhan/agentic-chaser/internal/routing"
)

// ClientCommsNode sends the client-facing message the router asked for. A
// notification additionally closes the case, since provider information
// handover is the last step of the journey.
func ClientCommsNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("client comms: %w", err)
		}

		decision, err := extractDecision(s)
		if err != nil {
			return s, fmt.Errorf("client comms: %w", err)
		}

		if decision.Action == routing.ActionClientNotification {
			msg, err := rt.Messaging.NotifyClient(ctx, *c)
			if err != nil {
				return s, fmt.Errorf("%w: notify client for case %s: %w", ErrCommunicationFault, c.ID, err)
			}

			closed, err := rt.Cases.Complete(ctx, c.ID)
			if err != nil {
				return s, fmt.Errorf("close case %s after notification: %w", c.ID, err)
			}

			rt.Logger.InfoContext(ctx, "client notified, case closed",
				"case_id", c.ID,
				"message_id", msg.ID,
			)

			s = s.Set(KeyCase, *closed)
			s = s.Set(KeyMessageID, msg.ID)
			return s, nil
		}

		msg, err := rt.Messaging.ChaseClient(ctx, *c)
		if err != nil {
			return s, fmt.Errorf("%w: chase client for case %s: %w", ErrCommunicationFault, c.ID, err)
		}

		rt.Logger.InfoContext(ctx, "client chased",
			"case_id", c.ID,
			"state", c.State,
			"message_id", msg.ID,
		)

		s = s.Set(KeyMessageID, msg.ID)
		return s, nil
	})
}

// providerKinds maps provider-facing router actions to communication kinds.
var providerKinds = map[routing.Action]prompts.Kind{
	routing.ActionProviderFollowUp:       prompts.KindProviderFollowUp,
	routing.ActionProviderUrgentFollowUp: prompts.KindProviderUrgent,
	routing.ActionProviderClarification:  prompts.KindProviderClarification,
}

// ProviderCommsNode sends the provider chase matching the router's action.
// Urgent follow-ups also poll the portal for the latest processing status.
func ProviderCommsNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("provider comms: %w", err)
		}

		decision, err := extractDecision(s)
		if err != nil {
			return s, fmt.Errorf("provider comms: %w", err)
		}

		kind, ok := providerKinds[decision.Action]
		if !ok {
			return s, fmt.Errorf("%w: no provider communication for action %s", ErrCommunicationFault, decision.Action)
		}

		msg, err := rt.Messaging.ChaseProvider(ctx, *c, kind)
		if err != nil {
			return s, fmt.Errorf("%w: chase provider for case %s: %w", ErrCommunicationFault, c.ID, err)
		}

		if decision.Action == routing.ActionProviderUrgentFollowUp {
			if result, err := rt.Portal.CheckStatus(ctx, *c); err != nil {
				rt.Logger.WarnContext(ctx, "portal status check failed", "case_id", c.ID, "error", err)
			} else {
				rt.Logger.InfoContext(ctx, "portal status checked",
					"case_id", c.ID,
					"reference", result.Reference,
				)
			}
		}

		rt.Logger.InfoContext(ctx, "provider chased",
			"case_id", c.ID,
			"kind", kind,
			"message_id", msg.ID,
		)

		s = s.Set(KeyMessageID, msg.ID)
		return s, nil
	})
}

// ResubmitNode asks the client for a replacement after a failed
// verification, naming the quality issues and the category of document
// needed.
func ResubmitNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("resubmit: %w", err)
		}

		doc, err := extractDocument(s)
		if err != nil {
			return s, fmt.Errorf("resubmit: %w", err)
		}

		msg, err := rt.Messaging.RequestResubmission(ctx, c.ClientID, &c.ID, *doc)
		if err != nil {
			return s, fmt.Errorf("%w: request resubmission for case %s: %w", ErrCommunicationFault, c.ID, err)
		}

		rt.Logger.InfoContext(ctx, "resubmission requested",
			"case_id", c.ID,
			"document_id", doc.ID,
			"issues", doc.Issues,
			"message_id", msg.ID,
		)

		s = s.Set(KeyMessageID, msg.ID)
		return s, nil
	})
}

func extractDocument(s state.State) (*documents.Document, error) {
	val, ok := s.Get(KeyDocument)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyDocument)
	}

	doc, ok := val.(documents.Document)
	if !ok {
		return nil, fmt.Errorf("%s is not documents.Document", KeyDocument)
	}

	return &doc, nil
}
