package communications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
	"github.com/kgnguhan/agentic-chaser/pkg/query"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a message repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "communications"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Message], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Body")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	messages, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	result := pagination.NewPageResult(messages, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Message, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	m, err := repository.QueryOne(ctx, r.db, q, args, scanMessage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) Record(ctx context.Context, cmd RecordCommand) (*Message, error) {
	if cmd.ClientID == "" || cmd.Body == "" {
		return nil, fmt.Errorf("%w: client_id and body required", ErrInvalidMessage)
	}
	if !ValidDirection(cmd.Direction) {
		return nil, fmt.Errorf("%w: direction %q", ErrInvalidMessage, cmd.Direction)
	}

	channel := cmd.Channel
	if channel == "" {
		channel = "email"
	}

	id := uuid.New().String()
	q := `
		INSERT INTO messages(id, client_id, case_id, direction, channel, body)
		VALUES ($1, $2, $3, $4, $5, $6)`

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, q,
			id, cmd.ClientID, cmd.CaseID, cmd.Direction, channel, cmd.Body)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("message recorded", "id", id, "client", cmd.ClientID, "direction", cmd.Direction)
	return r.Find(ctx, id)
}

func (r *repo) RecentClientMessages(ctx context.Context, clientID string, limit int) ([]Message, error) {
	direction := DirectionClientToAdvisor
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("ClientID", &clientID).
		WhereEquals("Direction", &direction).
		BuildLimited(limit)

	messages, err := repository.QueryMany(ctx, r.db, q, args, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("query recent client messages: %w", err)
	}
	return messages, nil
}

func (r *repo) LabelSentiment(ctx context.Context, id, sentiment string) error {
	if !ValidSentiment(sentiment) {
		return fmt.Errorf("%w: %q", ErrInvalidSentiment, sentiment)
	}

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx,
			"UPDATE messages SET sentiment = $2 WHERE id = $1",
			id, sentiment)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}
