package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/communications"
	"github.com/kgnguhan/agentic-chaser/internal/config"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/factfind"
	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
	"github.com/kgnguhan/agentic-chaser/internal/prompts"
	"github.com/kgnguhan/agentic-chaser/internal/scheduler"
	"github.com/kgnguhan/agentic-chaser/internal/workflow"
)

type fakeCases struct {
	cases.System
	ticked  int
	tickErr error
	active  []cases.Case
}

func (f *fakeCases) Tick(context.Context) (int, error) {
	return f.ticked, f.tickErr
}

func (f *fakeCases) Active(context.Context) ([]cases.Case, error) {
	return f.active, nil
}

type fakePostAdvice struct {
	postadvice.System
	ticked      int
	outstanding []postadvice.Item
}

func (f *fakePostAdvice) Tick(context.Context) (int, error) {
	return f.ticked, nil
}

func (f *fakePostAdvice) Outstanding(context.Context, int) ([]postadvice.Item, error) {
	return f.outstanding, nil
}

type fakeFactFind struct {
	factfind.System
	queue []factfind.QueueEntry
}

func (f *fakeFactFind) ChaseQueue(context.Context, int) ([]factfind.QueueEntry, error) {
	return f.queue, nil
}

type fakeDocuments struct {
	documents.System
	unverified []documents.Document
	processed  map[string]*documents.Document
}

func (f *fakeDocuments) AwaitingVerification(context.Context, int) ([]documents.Document, error) {
	return f.unverified, nil
}

func (f *fakeDocuments) Process(_ context.Context, id string) (*documents.Document, error) {
	doc, ok := f.processed[id]
	if !ok {
		return nil, documents.ErrAlreadyProcessed
	}
	return doc, nil
}

type fakeMessaging struct {
	factFindChases int
	reminders      int
	resubmissions  int
}

func (f *fakeMessaging) ChaseClient(context.Context, cases.Case) (*communications.Message, error) {
	return &communications.Message{}, nil
}

func (f *fakeMessaging) NotifyClient(context.Context, cases.Case) (*communications.Message, error) {
	return &communications.Message{}, nil
}

func (f *fakeMessaging) ChaseProvider(context.Context, cases.Case, prompts.Kind) (*communications.Message, error) {
	return &communications.Message{}, nil
}

func (f *fakeMessaging) RequestResubmission(context.Context, string, *string, documents.Document) (*communications.Message, error) {
	f.resubmissions++
	return &communications.Message{}, nil
}

func (f *fakeMessaging) RequestFactFindDocuments(context.Context, factfind.QueueEntry) (*communications.Message, error) {
	f.factFindChases++
	return &communications.Message{}, nil
}

func (f *fakeMessaging) SendPostAdviceReminder(context.Context, postadvice.Item) (*communications.Message, error) {
	f.reminders++
	return &communications.Message{}, nil
}

func testConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		Interval:    "1h",
		Concurrency: 2,
		QueueLimit:  10,
	}
}

func TestRunCycle(t *testing.T) {
	rejected := &documents.Document{
		ID:       "doc-2",
		ClientID: "client-2",
		Status:   documents.StatusRejected,
	}
	verified := &documents.Document{
		ID:       "doc-1",
		ClientID: "client-1",
		Status:   documents.StatusVerified,
	}

	messaging := &fakeMessaging{}
	rt := &workflow.Runtime{
		Cases:     &fakeCases{ticked: 3},
		Documents: &fakeDocuments{
			unverified: []documents.Document{{ID: "doc-1"}, {ID: "doc-2"}, {ID: "doc-3"}},
			processed:  map[string]*documents.Document{"doc-1": verified, "doc-2": rejected},
		},
		Messaging: messaging,
		Logger:    slog.Default(),
	}

	sched := scheduler.New(
		testConfig(),
		rt,
		&fakeFactFind{queue: []factfind.QueueEntry{{ClientID: "client-1"}, {ClientID: "client-2"}}},
		&fakePostAdvice{ticked: 2, outstanding: []postadvice.Item{{ID: "item-1"}}},
		slog.Default(),
	)

	report, err := sched.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.CasesTicked != 3 {
		t.Errorf("cases ticked: got %d, want 3", report.CasesTicked)
	}
	if report.ItemsTicked != 2 {
		t.Errorf("items ticked: got %d, want 2", report.ItemsTicked)
	}
	if report.FactFindChases != 2 || messaging.factFindChases != 2 {
		t.Errorf("fact-find chases: report %d, sent %d", report.FactFindChases, messaging.factFindChases)
	}
	if report.PostAdviceReminders != 1 || messaging.reminders != 1 {
		t.Errorf("reminders: report %d, sent %d", report.PostAdviceReminders, messaging.reminders)
	}
	if report.DocumentsVerified != 1 {
		t.Errorf("documents verified: got %d, want 1", report.DocumentsVerified)
	}
	if report.DocumentsRejected != 1 {
		t.Errorf("documents rejected: got %d, want 1", report.DocumentsRejected)
	}
	if messaging.resubmissions != 1 {
		t.Errorf("resubmissions: got %d, want 1", messaging.resubmissions)
	}
	if report.Actions == nil {
		t.Error("actions map should be initialized")
	}
	if report.CompletedAt.Before(report.StartedAt) {
		t.Error("completed before started")
	}

	if got := sched.LastReport(); got != report {
		t.Error("LastReport should return the latest cycle")
	}
}

func TestRunCycleAbortsOnTickFailure(t *testing.T) {
	rt := &workflow.Runtime{
		Cases:     &fakeCases{tickErr: errors.New("db down")},
		Documents: &fakeDocuments{},
		Messaging: &fakeMessaging{},
		Logger:    slog.Default(),
	}

	sched := scheduler.New(testConfig(), rt, &fakeFactFind{}, &fakePostAdvice{}, slog.Default())

	if _, err := sched.RunCycle(context.Background()); err == nil {
		t.Fatal("expected the tick failure to abort the cycle")
	}
	if sched.LastReport() != nil {
		t.Error("aborted cycle should not publish a report")
	}
}

func TestRunCycleSkipsInterventionCases(t *testing.T) {
	rt := &workflow.Runtime{
		Cases: &fakeCases{active: []cases.Case{
			{ID: "case-1", NeedsIntervention: true},
		}},
		Documents: &fakeDocuments{},
		Messaging: &fakeMessaging{},
		Logger:    slog.Default(),
	}

	sched := scheduler.New(testConfig(), rt, &fakeFactFind{}, &fakePostAdvice{}, slog.Default())

	report, err := sched.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.CasesChased != 0 || report.CaseFailures != 0 {
		t.Errorf("advisor-held case should be skipped: %+v", report)
	}
}
