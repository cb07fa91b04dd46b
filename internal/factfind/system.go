package factfind

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"

	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
)

// System defines the public contract for fact-find operations.
type System interface {
	Handler() *Handler

	// Status derives a client's fact-find progress from their documents.
	Status(ctx context.Context, clientID string) (*Status, error)

	// ChaseQueue returns clients with at least one open case and at least
	// one missing category, most missing first, name breaking ties. Capped
	// at limit.
	ChaseQueue(ctx context.Context, limit int) ([]QueueEntry, error)
}

type system struct {
	db        *sql.DB
	documents documents.System
	logger    *slog.Logger
}

// New creates a fact-find system over the document domain.
func New(db *sql.DB, docs documents.System, logger *slog.Logger) System {
	return &system{
		db:        db,
		documents: docs,
		logger:    logger.With("system", "factfind"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Status(ctx context.Context, clientID string) (*Status, error) {
	docs, err := s.documents.ForClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("fact-find status for %s: %w", clientID, err)
	}

	status := ComputeStatus(clientID, docs)
	return &status, nil
}

type activeClient struct {
	id   string
	name string
}

func (s *system) ChaseQueue(ctx context.Context, limit int) ([]QueueEntry, error) {
	q := `
		SELECT DISTINCT c.id, c.name
		FROM clients c
		INNER JOIN loa_cases lc ON lc.client_id = c.id
		WHERE lc.state <> 'complete'`

	clients, err := repository.QueryMany(ctx, s.db, q, nil,
		func(sc repository.Scanner) (activeClient, error) {
			var ac activeClient
			err := sc.Scan(&ac.id, &ac.name)
			return ac, err
		})
	if err != nil {
		return nil, fmt.Errorf("query active clients: %w", err)
	}

	queue := make([]QueueEntry, 0, len(clients))
	for _, client := range clients {
		status, err := s.Status(ctx, client.id)
		if err != nil {
			return nil, err
		}
		if len(status.MissingDocuments) == 0 {
			continue
		}

		queue = append(queue, QueueEntry{
			ClientID:     client.id,
			ClientName:   client.name,
			MissingCount: len(status.MissingDocuments),
			Missing:      status.MissingDocuments,
		})
	}

	sort.Slice(queue, func(i, j int) bool {
		if queue[i].MissingCount != queue[j].MissingCount {
			return queue[i].MissingCount > queue[j].MissingCount
		}
		return queue[i].ClientName < queue[j].ClientName
	})

	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}

	return queue, nil
}
