package workflow

import (
	"testing"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/routing"
)

func stateWithAction(action routing.Action) state.State {
	s := state.New(nil)
	return s.Set(KeyDecision, routing.Decision{Action: action})
}

func TestEdgeConditions(t *testing.T) {
	tests := []struct {
		action   routing.Action
		client   bool
		provider bool
		submit   bool
		verify   bool
		passive  bool
	}{
		{action: routing.ActionClientCommunication, client: true},
		{action: routing.ActionClientNotification, client: true},
		{action: routing.ActionProviderFollowUp, provider: true},
		{action: routing.ActionProviderUrgentFollowUp, provider: true},
		{action: routing.ActionProviderClarification, provider: true},
		{action: routing.ActionProviderSubmission, submit: true},
		{action: routing.ActionDocumentVerification, verify: true},
		{action: routing.ActionMonitor, passive: true},
		{action: routing.ActionEscalateToAdvisor, passive: true},
		{action: routing.ActionComplete, passive: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			s := stateWithAction(tt.action)

			if got := clientAction(s); got != tt.client {
				t.Errorf("clientAction: got %v, want %v", got, tt.client)
			}
			if got := providerAction(s); got != tt.provider {
				t.Errorf("providerAction: got %v, want %v", got, tt.provider)
			}
			if got := actionIs(routing.ActionProviderSubmission)(s); got != tt.submit {
				t.Errorf("submit: got %v, want %v", got, tt.submit)
			}
			if got := actionIs(routing.ActionDocumentVerification)(s); got != tt.verify {
				t.Errorf("verify: got %v, want %v", got, tt.verify)
			}
			if got := passiveAction(s); got != tt.passive {
				t.Errorf("passiveAction: got %v, want %v", got, tt.passive)
			}
		})
	}
}

func TestExactlyOneEdgeFires(t *testing.T) {
	conditions := []func(state.State) bool{
		clientAction,
		providerAction,
		actionIs(routing.ActionProviderSubmission),
		actionIs(routing.ActionDocumentVerification),
		passiveAction,
	}

	for _, action := range []routing.Action{
		routing.ActionClientCommunication,
		routing.ActionClientNotification,
		routing.ActionProviderFollowUp,
		routing.ActionProviderUrgentFollowUp,
		routing.ActionProviderClarification,
		routing.ActionProviderSubmission,
		routing.ActionDocumentVerification,
		routing.ActionMonitor,
		routing.ActionEscalateToAdvisor,
		routing.ActionComplete,
	} {
		s := stateWithAction(action)

		var fired int
		for _, cond := range conditions {
			if cond(s) {
				fired++
			}
		}

		if fired != 1 {
			t.Errorf("%s: %d outgoing edges fired, want exactly 1", action, fired)
		}
	}
}

func TestMissingDecisionIsPassive(t *testing.T) {
	s := state.New(nil)

	if clientAction(s) || providerAction(s) {
		t.Error("no decision should not route to a comms node")
	}
	if !passiveAction(s) {
		t.Error("no decision should fall through to finish")
	}
}

func TestVerificationFailed(t *testing.T) {
	s := state.New(nil)
	if verificationFailed(s) {
		t.Error("no document should not read as a failure")
	}

	s = s.Set(KeyDocument, documents.Document{Status: documents.StatusRejected})
	if !verificationFailed(s) {
		t.Error("rejected document should read as a failure")
	}

	s = s.Set(KeyDocument, documents.Document{Status: documents.StatusVerified})
	if verificationFailed(s) {
		t.Error("verified document should not read as a failure")
	}
}
