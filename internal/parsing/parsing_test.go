package parsing

import (
	"strings"
	"testing"
)

func TestParseFallbackIntents(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		intent     string
		question   bool
		completion bool
	}{
		{
			name:       "completion phrase",
			body:       "I've signed the form and posted it back to you.",
			intent:     IntentConfirmingCompletion,
			completion: true,
		},
		{
			name:       "completion outranks a question",
			body:       "All done, it's uploaded. Anything else you need?",
			intent:     IntentConfirmingCompletion,
			question:   true,
			completion: true,
		},
		{
			name:   "concern phrase",
			body:   "I'm still waiting to hear back and getting worried.",
			intent: IntentRaisingConcern,
		},
		{
			name:     "bare question",
			body:     "How long will the transfer take?",
			intent:   IntentAskingQuestion,
			question: true,
		},
		{
			name:   "plain statement",
			body:   "Thanks for the update, speak soon.",
			intent: IntentGeneral,
		},
		{
			name:   "empty body",
			body:   "",
			intent: IntentGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := parseFallback(tt.body)

			if parsed.Intent != tt.intent {
				t.Errorf("intent: got %s, want %s", parsed.Intent, tt.intent)
			}
			if parsed.ContainsQuestion != tt.question {
				t.Errorf("question: got %v, want %v", parsed.ContainsQuestion, tt.question)
			}
			if parsed.IndicatesCompletion != tt.completion {
				t.Errorf("completion: got %v, want %v", parsed.IndicatesCompletion, tt.completion)
			}
			if parsed.Source != SourceFallback {
				t.Errorf("source: got %s", parsed.Source)
			}
			if parsed.KeyFacts == nil || parsed.ActionItems == nil {
				t.Error("fact slices should be empty, not nil")
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	got := summarize("I posted the form yesterday. Should arrive by Friday.")
	if got != "I posted the form yesterday." {
		t.Errorf("first sentence: got %q", got)
	}

	got = summarize("line one\n  line   two.")
	if got != "line one line two." {
		t.Errorf("whitespace collapse: got %q", got)
	}

	long := strings.Repeat("a", 300)
	got = summarize(long)
	if len(got) != summaryLimit+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncation: got length %d", len(got))
	}
}

func TestValidIntent(t *testing.T) {
	for _, intent := range []string{
		IntentProvidingInformation,
		IntentAskingQuestion,
		IntentConfirmingCompletion,
		IntentRaisingConcern,
		IntentGeneral,
	} {
		if !validIntent(intent) {
			t.Errorf("%s should be valid", intent)
		}
	}

	if validIntent("venting") {
		t.Error("unknown intent accepted")
	}
}
