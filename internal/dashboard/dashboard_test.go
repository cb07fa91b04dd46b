package dashboard_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/dashboard"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/factfind"
	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
)

// Fakes embed the System interfaces and override only the methods the
// dashboard reads through.

type fakeCases struct {
	cases.System
	active []cases.Case
}

func (f *fakeCases) Active(context.Context) ([]cases.Case, error) {
	return f.active, nil
}

func (f *fakeCases) ActiveForClient(_ context.Context, clientID string) ([]cases.Case, error) {
	var open []cases.Case
	for _, c := range f.active {
		if c.ClientID == clientID {
			open = append(open, c)
		}
	}
	return open, nil
}

func (f *fakeCases) Find(_ context.Context, id string) (*cases.Case, error) {
	for _, c := range f.active {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, cases.ErrNotFound
}

type fakeClients struct {
	clients.System
	all []clients.Client
}

func (f *fakeClients) All(context.Context) ([]clients.Client, error) {
	return f.all, nil
}

func (f *fakeClients) Find(_ context.Context, id string) (*clients.Client, error) {
	for _, c := range f.all {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, clients.ErrNotFound
}

type fakeDocuments struct {
	documents.System
	docs map[string][]documents.Document
}

func (f *fakeDocuments) ForClient(_ context.Context, clientID string) ([]documents.Document, error) {
	return f.docs[clientID], nil
}

type fakeFactFind struct {
	factfind.System
}

func (f *fakeFactFind) Status(_ context.Context, clientID string) (*factfind.Status, error) {
	return &factfind.Status{ClientID: clientID, RequiredCount: len(factfind.Categories)}, nil
}

type fakePostAdvice struct {
	postadvice.System
	items map[string][]postadvice.Item
}

func (f *fakePostAdvice) ForClient(_ context.Context, clientID string) ([]postadvice.Item, error) {
	return f.items[clientID], nil
}

func conf(v float64) *float64 { return &v }

func newDashboard(caseSys *fakeCases, clientSys *fakeClients, docSys *fakeDocuments) dashboard.System {
	if docSys == nil {
		docSys = &fakeDocuments{}
	}
	return dashboard.New(
		caseSys,
		clientSys,
		docSys,
		&fakeFactFind{},
		&fakePostAdvice{},
		slog.Default(),
	)
}

func TestPriorityQueue(t *testing.T) {
	caseSys := &fakeCases{active: []cases.Case{
		{ID: "case-1", ClientID: "client-1", State: cases.StateWithProviderProcessing, PriorityScore: 8.2},
		{ID: "case-2", ClientID: "client-1", State: cases.StateAwaitingClientSignature, PriorityScore: 6.5},
		{ID: "case-3", ClientID: "client-2", State: cases.StateSubmittedToProvider, PriorityScore: 4.1},
	}}
	sys := newDashboard(caseSys, &fakeClients{}, nil)

	t.Run("whole queue preserves priority order", func(t *testing.T) {
		queue, err := sys.PriorityQueue(context.Background(), 0, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue) != 3 {
			t.Fatalf("got %d entries, want 3", len(queue))
		}
		if queue[0].CaseID != "case-1" || queue[2].CaseID != "case-3" {
			t.Errorf("order not preserved: %v", queue)
		}
		if queue[0].ChaseType != cases.ChaseProvider {
			t.Errorf("chase type: got %s, want provider", queue[0].ChaseType)
		}
		if queue[1].ChaseType != cases.ChaseClient {
			t.Errorf("chase type: got %s, want client", queue[1].ChaseType)
		}
	})

	t.Run("client filter keeps only client-action cases", func(t *testing.T) {
		queue, err := sys.PriorityQueue(context.Background(), 0, cases.ChaseClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue) != 1 || queue[0].CaseID != "case-2" {
			t.Errorf("got %v, want only case-2", queue)
		}
	})

	t.Run("limit caps the queue", func(t *testing.T) {
		queue, err := sys.PriorityQueue(context.Background(), 2, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue) != 2 {
			t.Errorf("got %d entries, want 2", len(queue))
		}
	})
}

func TestCaseDetailBreakdown(t *testing.T) {
	caseSys := &fakeCases{active: []cases.Case{
		{
			ID:               "case-1",
			ClientID:         "client-1",
			State:            cases.StateWithProviderProcessing,
			DaysInState:      9,
			SLADaysRemaining: -3,
			DocQualityScore:  conf(62.5),
		},
		{
			ID:               "case-2",
			ClientID:         "client-2",
			State:            cases.StateAwaitingClientSignature,
			SLADaysRemaining: 10,
		},
	}}
	clientSys := &fakeClients{all: []clients.Client{
		{ID: "client-1", Name: "Margaret Holloway", Age: 61},
		{ID: "client-2", Name: "Priya Nair", Age: 38},
	}}
	sys := newDashboard(caseSys, clientSys, nil)

	detail, err := sys.CaseDetail(context.Background(), "case-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Client == nil || detail.Client.Name != "Margaret Holloway" {
		t.Fatalf("client not attached: %+v", detail.Client)
	}
	if detail.Priority.DaysInState != 9 {
		t.Errorf("days in state: got %d", detail.Priority.DaysInState)
	}
	if detail.Priority.SLAOverdueDays != 3 {
		t.Errorf("overdue days: got %d, want 3", detail.Priority.SLAOverdueDays)
	}
	if !detail.Priority.ClientAge55Plus {
		t.Error("expected the senior flag for a 61 year old")
	}
	if detail.Priority.DocQualityScore != 62.5 {
		t.Errorf("quality: got %v, want the stored score", detail.Priority.DocQualityScore)
	}

	detail, err = sys.CaseDetail(context.Background(), "case-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Priority.DocQualityScore != 75.0 {
		t.Errorf("quality: got %v, want the unscored default", detail.Priority.DocQualityScore)
	}
	if detail.Priority.SLAOverdueDays != 0 {
		t.Errorf("overdue days: got %d, want 0", detail.Priority.SLAOverdueDays)
	}
	if detail.Priority.ClientAge55Plus {
		t.Error("senior flag should be off for a 38 year old")
	}
}

func TestProviderSummaries(t *testing.T) {
	caseSys := &fakeCases{active: []cases.Case{
		{ID: "case-1", ProviderName: "Aviva", State: cases.StateWithProviderProcessing},
		{ID: "case-2", ProviderName: "Aviva", State: cases.StateWithProviderProcessing},
		{ID: "case-3", ProviderName: "Aviva", State: cases.StateSubmittedToProvider},
		{ID: "case-4", ProviderName: "Scottish Widows", State: cases.StateAwaitingClientSignature},
	}}
	sys := newDashboard(caseSys, &fakeClients{}, nil)

	summaries, err := sys.ProviderSummaries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("got %d providers, want 2", len(summaries))
	}
	if summaries[0].Provider != "Aviva" || summaries[1].Provider != "Scottish Widows" {
		t.Errorf("providers not sorted by name: %v", summaries)
	}
	if summaries[0].PendingCases != 3 {
		t.Errorf("pending: got %d, want 3", summaries[0].PendingCases)
	}
	if summaries[0].Stages["With Provider - Processing"] != 2 {
		t.Errorf("stage counts: %v", summaries[0].Stages)
	}
	if summaries[0].StagesSummary != "Submitted to Provider: 1, With Provider - Processing: 2" {
		t.Errorf("summary line: %q", summaries[0].StagesSummary)
	}
}

func TestProviderDetail(t *testing.T) {
	caseSys := &fakeCases{active: []cases.Case{
		{ID: "case-1", ProviderName: "Aviva", State: cases.StateWithProviderProcessing, PriorityScore: 7.0},
		{ID: "case-2", ProviderName: "Royal London", State: cases.StateSubmittedToProvider},
	}}
	sys := newDashboard(caseSys, &fakeClients{}, nil)

	detail, err := sys.ProviderDetail(context.Background(), "Aviva")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.PendingCases != 1 || len(detail.Cases) != 1 {
		t.Fatalf("got %+v, want one Aviva case", detail)
	}
	if detail.Cases[0].CaseID != "case-1" {
		t.Errorf("wrong case: %v", detail.Cases)
	}
}

func TestClientSummaries(t *testing.T) {
	clientSys := &fakeClients{all: []clients.Client{
		{ID: "client-1", Name: "David Chen"},
	}}
	caseSys := &fakeCases{active: []cases.Case{
		{ID: "case-1", ClientID: "client-1", State: cases.StateAwaitingClientSignature},
	}}
	docSys := &fakeDocuments{docs: map[string][]documents.Document{
		"client-1": {
			{ID: "doc-1", Status: documents.StatusVerified},
			{ID: "doc-2", Status: documents.StatusPending},
			{ID: "doc-3", Status: documents.StatusVerified, NeedsReview: true},
		},
	}}
	sys := newDashboard(caseSys, clientSys, docSys)

	summaries, err := sys.ClientSummaries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 1 {
		t.Fatalf("got %d rows, want 1", len(summaries))
	}
	row := summaries[0]
	if row.PendingCases != 1 {
		t.Errorf("pending cases: got %d", row.PendingCases)
	}
	if row.TotalDocuments != 3 {
		t.Errorf("total documents: got %d", row.TotalDocuments)
	}
	if row.PendingDocuments != 2 {
		t.Errorf("pending documents: got %d, want the unverified and the flagged one", row.PendingDocuments)
	}
}

func TestClientDetail(t *testing.T) {
	clientSys := &fakeClients{all: []clients.Client{
		{ID: "client-1", Name: "Eleanor Whitfield", Age: 66, CommunicationPreference: clients.ChannelPhone},
	}}
	caseSys := &fakeCases{active: []cases.Case{
		{ID: "case-1", ClientID: "client-1", State: cases.StateProviderInfoReceived},
	}}
	sys := newDashboard(caseSys, clientSys, nil)

	detail, err := sys.ClientDetail(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Client.Name != "Eleanor Whitfield" {
		t.Errorf("client: %+v", detail.Client)
	}
	if detail.PendingCases != 1 || len(detail.Cases) != 1 {
		t.Errorf("cases: %+v", detail.Cases)
	}
	if detail.FactFind.ClientID != "client-1" {
		t.Errorf("fact-find status not attached: %+v", detail.FactFind)
	}

	if _, err := sys.ClientDetail(context.Background(), "client-9"); err == nil {
		t.Fatal("expected not-found to surface")
	}
}
