package priority_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/communications"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/priority"
	"github.com/kgnguhan/agentic-chaser/internal/scoring"
)

// Fakes embed the System interfaces and override only the methods the
// engine touches.

type fakeCases struct {
	cases.System
	applied []cases.PriorityUpdate
}

func (f *fakeCases) ApplyPriority(_ context.Context, _ string, update cases.PriorityUpdate) error {
	f.applied = append(f.applied, update)
	return nil
}

type fakeClients struct {
	clients.System
	client *clients.Client
}

func (f *fakeClients) Find(context.Context, string) (*clients.Client, error) {
	if f.client == nil {
		return nil, clients.ErrNotFound
	}
	return f.client, nil
}

type fakeDocuments struct {
	documents.System
	docs []documents.Document
}

func (f *fakeDocuments) ForClient(context.Context, string) ([]documents.Document, error) {
	return f.docs, nil
}

type fakeMessages struct {
	communications.System
	messages []communications.Message
	labeled  map[string]string
}

func (f *fakeMessages) RecentClientMessages(_ context.Context, _ string, limit int) ([]communications.Message, error) {
	if len(f.messages) > limit {
		return f.messages[:limit], nil
	}
	return f.messages, nil
}

func (f *fakeMessages) LabelSentiment(_ context.Context, id, sentiment string) error {
	if f.labeled == nil {
		f.labeled = make(map[string]string)
	}
	f.labeled[id] = sentiment
	return nil
}

type fakeSentiment struct {
	label string
	err   error
}

func (f fakeSentiment) Label(context.Context, string) (string, error) {
	return f.label, f.err
}

type fixedScorer struct {
	score float64
	err   error
}

func (f fixedScorer) Score(context.Context, scoring.Features) (float64, error) {
	return f.score, f.err
}

func strPtr(s string) *string { return &s }

func newEngine(
	scorer scoring.PriorityScorer,
	sentiment scoring.SentimentScorer,
	caseSys *fakeCases,
	docs []documents.Document,
	messages []communications.Message,
) (*priority.Engine, *fakeMessages) {
	msgSys := &fakeMessages{messages: messages}

	engine := priority.NewEngine(
		scorer,
		sentiment,
		caseSys,
		&fakeClients{client: &clients.Client{ID: "client-1", Age: 40}},
		&fakeDocuments{docs: docs},
		msgSys,
		slog.Default(),
	)

	return engine, msgSys
}

func TestEvaluateSentimentAdjustment(t *testing.T) {
	tests := []struct {
		name      string
		sentiment string
		expected  float64
	}{
		{"frustrated raises the score", communications.SentimentFrustrated, 5.8},
		{"confused raises it less", communications.SentimentConfused, 5.4},
		{"neutral leaves it alone", communications.SentimentNeutral, 5.0},
		{"positive lowers it", communications.SentimentPositive, 4.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newEngine(
				fixedScorer{score: 5.0},
				fakeSentiment{label: communications.SentimentNeutral},
				&fakeCases{},
				nil,
				[]communications.Message{{ID: "m1", Body: "hello", Sentiment: strPtr(tt.sentiment)}},
			)

			outcome, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(outcome.Score-tt.expected) > 1e-9 {
				t.Errorf("score: got %v, want %v", outcome.Score, tt.expected)
			}
			if outcome.Sentiment != tt.sentiment {
				t.Errorf("sentiment: got %s, want %s", outcome.Sentiment, tt.sentiment)
			}
		})
	}
}

func TestEvaluateLabelsUnlabeledMessages(t *testing.T) {
	engine, msgSys := newEngine(
		fixedScorer{score: 3.0},
		fakeSentiment{label: communications.SentimentFrustrated},
		&fakeCases{},
		nil,
		[]communications.Message{{ID: "m1", Body: "this is taking forever"}},
	)

	outcome, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Sentiment != communications.SentimentFrustrated {
		t.Errorf("sentiment: got %s, want frustrated", outcome.Sentiment)
	}
	if msgSys.labeled["m1"] != communications.SentimentFrustrated {
		t.Errorf("label not persisted: %v", msgSys.labeled)
	}
}

func TestEvaluateLabelsWholeWindow(t *testing.T) {
	engine, msgSys := newEngine(
		fixedScorer{score: 3.0},
		fakeSentiment{label: communications.SentimentConfused},
		&fakeCases{},
		nil,
		[]communications.Message{
			{ID: "m3", Body: "what does this form mean"},
			{ID: "m2", Body: "still waiting", Sentiment: strPtr(communications.SentimentFrustrated)},
			{ID: "m1", Body: "is this normal?"},
		},
	)

	outcome, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Sentiment != communications.SentimentConfused {
		t.Errorf("sentiment: got %s, want the newest label", outcome.Sentiment)
	}
	if len(msgSys.labeled) != 2 {
		t.Fatalf("expected both unlabeled messages persisted, got %v", msgSys.labeled)
	}
	for _, id := range []string{"m1", "m3"} {
		if msgSys.labeled[id] != communications.SentimentConfused {
			t.Errorf("message %s: got %q, want confused", id, msgSys.labeled[id])
		}
	}
}

func TestEvaluateLatestLabelWins(t *testing.T) {
	engine, _ := newEngine(
		fixedScorer{score: 3.0},
		fakeSentiment{label: communications.SentimentNeutral},
		&fakeCases{},
		nil,
		[]communications.Message{
			{ID: "m2", Body: "thanks!", Sentiment: strPtr(communications.SentimentPositive)},
			{ID: "m1", Body: "where is my transfer", Sentiment: strPtr(communications.SentimentFrustrated)},
		},
	)

	outcome, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Sentiment != communications.SentimentPositive {
		t.Errorf("got %s, want the newest label", outcome.Sentiment)
	}
}

func TestEvaluateNoMessagesReadsNeutral(t *testing.T) {
	engine, _ := newEngine(
		fixedScorer{score: 3.0},
		fakeSentiment{err: errors.New("unreachable")},
		&fakeCases{},
		nil,
		nil,
	)

	outcome, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Sentiment != communications.SentimentNeutral {
		t.Errorf("got %s, want neutral", outcome.Sentiment)
	}
}

func TestEvaluateFallsBackWhenModelUnavailable(t *testing.T) {
	engine, _ := newEngine(
		fixedScorer{err: scoring.ErrModelUnavailable},
		fakeSentiment{label: communications.SentimentNeutral},
		&fakeCases{},
		nil,
		nil,
	)

	outcome, err := engine.Evaluate(context.Background(), cases.Case{
		ID:               "case-1",
		ClientID:         "client-1",
		DaysInState:      10,
		SLADaysRemaining: 10,
	})
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}

	// Weighted fallback: 10 days in state plus the neutral document default.
	expected := 10*0.12 + (100-75.0)*0.04
	if math.Abs(outcome.BaseScore-expected) > 1e-9 {
		t.Errorf("base score: got %v, want %v", outcome.BaseScore, expected)
	}
}

func TestEvaluateSurfacesOtherScorerErrors(t *testing.T) {
	engine, _ := newEngine(
		fixedScorer{err: errors.New("bad features")},
		fakeSentiment{label: communications.SentimentNeutral},
		&fakeCases{},
		nil,
		nil,
	)

	if _, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1"}); err == nil {
		t.Fatal("expected error to surface")
	}
}

func TestEvaluateClamping(t *testing.T) {
	engine, _ := newEngine(
		fixedScorer{score: 10.0},
		fakeSentiment{label: communications.SentimentNeutral},
		&fakeCases{},
		nil,
		[]communications.Message{{ID: "m1", Body: "!", Sentiment: strPtr(communications.SentimentFrustrated)}},
	)

	outcome, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Score != 10.0 {
		t.Errorf("got %v, want clamp at 10", outcome.Score)
	}
}

func TestEvaluateUrgencyFlags(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		sla      int
		expected bool
	}{
		{"score above threshold", 7.5, 10, true},
		{"score exactly at threshold", 7.0, 10, false},
		{"overdue SLA", 2.0, -1, true},
		{"calm case", 2.0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newEngine(
				fixedScorer{score: tt.score},
				fakeSentiment{label: communications.SentimentNeutral},
				&fakeCases{},
				nil,
				nil,
			)

			outcome, err := engine.Evaluate(context.Background(), cases.Case{
				ID:               "case-1",
				ClientID:         "client-1",
				SLADaysRemaining: tt.sla,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if outcome.Escalate != tt.expected {
				t.Errorf("Escalate: got %v, want %v", outcome.Escalate, tt.expected)
			}
			if outcome.SLAOverdue != tt.expected {
				t.Errorf("SLAOverdue: got %v, want %v", outcome.SLAOverdue, tt.expected)
			}
		})
	}
}

func TestApplyPersistsOutcome(t *testing.T) {
	caseSys := &fakeCases{}
	engine, _ := newEngine(
		fixedScorer{score: 8.0},
		fakeSentiment{label: communications.SentimentNeutral},
		caseSys,
		nil,
		nil,
	)

	outcome, err := engine.Apply(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(caseSys.applied) != 1 {
		t.Fatalf("expected one persisted update, got %d", len(caseSys.applied))
	}

	update := caseSys.applied[0]
	if update.Score != outcome.Score || update.Escalate != outcome.Escalate {
		t.Errorf("persisted %+v, outcome %+v", update, outcome)
	}
}

func TestDocumentQualityAveraging(t *testing.T) {
	conf := func(v float64) *float64 { return &v }

	engine, _ := newEngine(
		nil,
		fakeSentiment{label: communications.SentimentNeutral},
		&fakeCases{},
		[]documents.Document{
			{OCRConfidence: conf(90)},
			{OCRConfidence: conf(50)},
			{OCRConfidence: nil},
		},
		nil,
	)

	outcome, err := engine.Evaluate(context.Background(), cases.Case{ID: "case-1", ClientID: "client-1", SLADaysRemaining: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Weighted scorer with quality 70: (100-70)*0.04 = 1.2.
	if math.Abs(outcome.BaseScore-1.2) > 1e-9 {
		t.Errorf("got %v, want 1.2", outcome.BaseScore)
	}
}
