package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/factfind"
	"github.com/kgnguhan/agentic-chaser/internal/postadvice"
)

// System defines the public contract for the dashboard read views.
type System interface {
	Handler() *Handler

	// PriorityQueue returns the highest priority open cases, optionally
	// narrowed to those waiting on the client or on the provider. A
	// non-positive limit returns the whole queue.
	PriorityQueue(ctx context.Context, limit int, chaseType string) ([]QueueEntry, error)

	// CaseDetail loads one case with its client and priority inputs.
	CaseDetail(ctx context.Context, id string) (*CaseDetail, error)

	// ProviderSummaries aggregates the open caseload per provider,
	// ordered by provider name.
	ProviderSummaries(ctx context.Context) ([]ProviderSummary, error)

	// ProviderDetail returns a provider's open cases ordered by priority.
	ProviderDetail(ctx context.Context, name string) (*ProviderDetail, error)

	// ClientSummaries returns every client with their open caseload and
	// document standing, ordered by name.
	ClientSummaries(ctx context.Context) ([]ClientSummary, error)

	// ClientDetail loads the full client panel.
	ClientDetail(ctx context.Context, id string) (*ClientDetail, error)
}

type service struct {
	cases      cases.System
	clients    clients.System
	documents  documents.System
	factfind   factfind.System
	postadvice postadvice.System
	logger     *slog.Logger
}

// New creates the dashboard system over the domain systems it reads from.
func New(
	caseSys cases.System,
	clientSys clients.System,
	docSys documents.System,
	factFindSys factfind.System,
	postAdviceSys postadvice.System,
	logger *slog.Logger,
) System {
	return &service{
		cases:      caseSys,
		clients:    clientSys,
		documents:  docSys,
		factfind:   factFindSys,
		postadvice: postAdviceSys,
		logger:     logger.With("system", "dashboard"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) PriorityQueue(ctx context.Context, limit int, chaseType string) ([]QueueEntry, error) {
	open, err := s.cases.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("load priority queue: %w", err)
	}

	queue := make([]QueueEntry, 0, len(open))
	for _, c := range open {
		entry := queueEntry(c)
		if chaseType != "" && entry.ChaseType != chaseType {
			continue
		}
		queue = append(queue, entry)
	}

	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}
	return queue, nil
}

func (s *service) CaseDetail(ctx context.Context, id string) (*CaseDetail, error) {
	c, err := s.cases.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.Find(ctx, c.ClientID)
	if err != nil {
		s.logger.Warn("client lookup failed for case detail", "case", id, "error", err)
		client = nil
	}

	return &CaseDetail{
		Case:     *c,
		Client:   client,
		Priority: breakdown(*c, client),
	}, nil
}

func (s *service) ProviderSummaries(ctx context.Context) ([]ProviderSummary, error) {
	open, err := s.cases.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("load provider summaries: %w", err)
	}

	byProvider := make(map[string][]cases.Case)
	for _, c := range open {
		byProvider[c.ProviderName] = append(byProvider[c.ProviderName], c)
	}

	names := make([]string, 0, len(byProvider))
	for name := range byProvider {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]ProviderSummary, 0, len(names))
	for _, name := range names {
		stages, line := stageCounts(byProvider[name])
		summaries = append(summaries, ProviderSummary{
			Provider:      name,
			PendingCases:  len(byProvider[name]),
			Stages:        stages,
			StagesSummary: line,
		})
	}
	return summaries, nil
}

func (s *service) ProviderDetail(ctx context.Context, name string) (*ProviderDetail, error) {
	open, err := s.cases.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("load provider detail: %w", err)
	}

	entries := make([]QueueEntry, 0)
	for _, c := range open {
		if c.ProviderName != name {
			continue
		}
		entries = append(entries, queueEntry(c))
	}

	return &ProviderDetail{
		Provider:     name,
		PendingCases: len(entries),
		Cases:        entries,
	}, nil
}

func (s *service) ClientSummaries(ctx context.Context) ([]ClientSummary, error) {
	all, err := s.clients.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load client summaries: %w", err)
	}

	summaries := make([]ClientSummary, 0, len(all))
	for _, client := range all {
		open, err := s.cases.ActiveForClient(ctx, client.ID)
		if err != nil {
			return nil, fmt.Errorf("load cases for %s: %w", client.ID, err)
		}

		docs, err := s.documents.ForClient(ctx, client.ID)
		if err != nil {
			return nil, fmt.Errorf("load documents for %s: %w", client.ID, err)
		}

		stages, line := stageCounts(open)
		summaries = append(summaries, ClientSummary{
			ClientID:         client.ID,
			Name:             client.Name,
			PendingCases:     len(open),
			Stages:           stages,
			StagesSummary:    line,
			PendingDocuments: pendingDocuments(docs),
			TotalDocuments:   len(docs),
		})
	}
	return summaries, nil
}

func (s *service) ClientDetail(ctx context.Context, id string) (*ClientDetail, error) {
	client, err := s.clients.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	open, err := s.cases.ActiveForClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load cases for %s: %w", id, err)
	}

	docs, err := s.documents.ForClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load documents for %s: %w", id, err)
	}

	items, err := s.postadvice.ForClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load follow-ups for %s: %w", id, err)
	}

	status, err := s.factfind.Status(ctx, id)
	if err != nil {
		return nil, err
	}

	entries := make([]QueueEntry, 0, len(open))
	for _, c := range open {
		entries = append(entries, queueEntry(c))
	}

	return &ClientDetail{
		Client:           *client,
		Cases:            entries,
		Documents:        docs,
		PostAdviceItems:  items,
		FactFind:         *status,
		PendingCases:     len(entries),
		PendingDocuments: pendingDocuments(docs),
	}, nil
}
