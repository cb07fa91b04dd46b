package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/priority"
	"github.com/kgnguhan/agentic-chaser/internal/routing"
)

// Execute runs the chase workflow for a single case. It builds the state
// graph (orchestrate → action node → finish, with verification branching
// through post-verification and resubmission), executes it, and extracts
// the ChaseResult from the final state.
func Execute(ctx context.Context, rt *Runtime, caseID string) (*ChaseResult, error) {
	c, err := rt.Cases.Find(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("load case %s: %w", caseID, err)
	}

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyCase, *c)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("chaser-case")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("orchestrate", OrchestrateNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("client", ClientCommsNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("provider", ProviderCommsNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("submit", SubmitNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("verify", VerifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("postverify", PostVerifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("resubmit", ResubmitNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finish", FinishNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("orchestrate", "client", clientAction); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("orchestrate", "provider", providerAction); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("orchestrate", "submit", actionIs(routing.ActionProviderSubmission)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("orchestrate", "verify", actionIs(routing.ActionDocumentVerification)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("orchestrate", "finish", passiveAction); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("client", "finish", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("provider", "finish", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("submit", "finish", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("verify", "postverify", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("postverify", "resubmit", verificationFailed); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("postverify", "finish", state.Not(verificationFailed)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("resubmit", "finish", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("orchestrate"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finish"); err != nil {
		return nil, err
	}

	return graph, nil
}

// FinishNode assembles the ChaseResult from whatever the traversed nodes
// left in the workflow state.
func FinishNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("finish: %w", err)
		}

		decision, err := extractDecision(s)
		if err != nil {
			return s, fmt.Errorf("finish: %w", err)
		}

		result := ChaseResult{
			CaseID:      c.ID,
			Action:      decision.Action,
			Priority:    c.PriorityScore,
			Escalated:   decision.Action == routing.ActionEscalateToAdvisor,
			FinalState:  c.State,
			CompletedAt: time.Now().UTC(),
		}

		if val, ok := s.Get(KeyPriority); ok {
			if outcome, ok := val.(priority.Outcome); ok {
				result.Sentiment = outcome.Sentiment
			}
		}

		if val, ok := s.Get(KeyMessageID); ok {
			if id, ok := val.(string); ok {
				result.MessageID = &id
			}
		}

		if val, ok := s.Get(KeyPortalRef); ok {
			if ref, ok := val.(string); ok {
				result.PortalReference = ref
			}
		}

		if val, ok := s.Get(KeyDocument); ok {
			if doc, ok := val.(documents.Document); ok {
				passed := doc.Verified()
				result.VerificationPassed = &passed
			}
		}

		rt.Logger.InfoContext(ctx, "chase complete",
			"case_id", result.CaseID,
			"action", result.Action,
			"final_state", result.FinalState,
		)

		s = s.Set(KeyResult, result)
		return s, nil
	})
}

func decisionAction(s state.State) (routing.Action, bool) {
	val, ok := s.Get(KeyDecision)
	if !ok {
		return "", false
	}

	d, ok := val.(routing.Decision)
	if !ok {
		return "", false
	}

	return d.Action, true
}

func actionIs(action routing.Action) func(s state.State) bool {
	return func(s state.State) bool {
		got, ok := decisionAction(s)
		return ok && got == action
	}
}

func clientAction(s state.State) bool {
	action, ok := decisionAction(s)
	if !ok {
		return false
	}

	return action == routing.ActionClientCommunication ||
		action == routing.ActionClientNotification
}

func providerAction(s state.State) bool {
	action, ok := decisionAction(s)
	if !ok {
		return false
	}

	switch action {
	case routing.ActionProviderFollowUp,
		routing.ActionProviderUrgentFollowUp,
		routing.ActionProviderClarification:
		return true
	}
	return false
}

func passiveAction(s state.State) bool {
	action, ok := decisionAction(s)
	if !ok {
		return true
	}

	switch action {
	case routing.ActionMonitor,
		routing.ActionEscalateToAdvisor,
		routing.ActionComplete:
		return true
	}
	return false
}

func verificationFailed(s state.State) bool {
	val, ok := s.Get(KeyDocument)
	if !ok {
		return false
	}

	doc, ok := val.(documents.Document)
	if !ok {
		return false
	}

	return !doc.Verified()
}

func extractResult(s state.State) (*ChaseResult, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyResult)
	}

	result, ok := val.(ChaseResult)
	if !ok {
		return nil, fmt.Errorf("%s is not ChaseResult", KeyResult)
	}

	return &result, nil
}
