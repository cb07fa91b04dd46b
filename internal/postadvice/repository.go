package postadvice

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

// New creates a follow-up repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "postadvice"),
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
) (*pagination.PageResult[Item], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Description", "ClientName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count follow-up items: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanItem)
	if err != nil {
		return nil, fmt.Errorf("query follow-up items: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Item, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	item, err := repository.QueryOne(ctx, r.db, q, args, scanItem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &item, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Item, error) {
	if cmd.ClientID == "" || cmd.Description == "" {
		return nil, fmt.Errorf("%w: client_id and description required", ErrInvalidItem)
	}

	id := uuid.New().String()
	q := `
		INSERT INTO post_advice_items(id, client_id, description, status, days_until_deadline)
		VALUES ($1, $2, $3, $4, $5)`

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, q,
			id, cmd.ClientID, cmd.Description, StatusPending, cmd.DaysUntilDeadline)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("follow-up tracked", "id", id, "client", cmd.ClientID)
	return r.Find(ctx, id)
}

func (r *repo) UpdateStatus(ctx context.Context, id, status string) (*Item, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx,
			"UPDATE post_advice_items SET status = $2, updated_at = now() WHERE id = $1",
			id, status)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("follow-up status updated", "id", id, "status", status)
	return r.Find(ctx, id)
}

func (r *repo) ForClient(ctx context.Context, clientID string) ([]Item, error) {
	q, args := query.
		NewBuilder(projection, reminderSort...).
		WhereEquals("ClientID", &clientID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanItem)
	if err != nil {
		return nil, fmt.Errorf("query client follow-ups: %w", err)
	}
	return items, nil
}

func (r *repo) Outstanding(ctx context.Context, limit int) ([]Item, error) {
	status := StatusCompleted
	q, args := query.
		NewBuilder(projection, reminderSort...).
		WhereNotEquals("Status", &status).
		BuildLimited(limit)

	items, err := repository.QueryMany(ctx, r.db, q, args, scanItem)
	if err != nil {
		return nil, fmt.Errorf("query outstanding follow-ups: %w", err)
	}
	return items, nil
}

func (r *repo) Tick(ctx context.Context) (int, error) {
	q := `
		UPDATE post_advice_items
		SET days_outstanding = days_outstanding + 1,
			days_until_deadline = days_until_deadline - 1,
			updated_at = now()
		WHERE status <> $1`

	var advanced int64
	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, q, StatusCompleted)
		if err != nil {
			return err
		}
		advanced, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("advance follow-up clocks: %w", err)
	}

	return int(advanced), nil
}
