package clients

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

// New creates a client repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "clients"),
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
) (*pagination.PageResult[Client], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Email")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanClient)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Client, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanClient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Client, error) {
	if cmd.Name == "" || cmd.Email == "" {
		return nil, fmt.Errorf("%w: name and email required", ErrInvalid)
	}

	preference := cmd.CommunicationPreference
	if preference == "" {
		preference = ChannelEmail
	}

	id := uuid.New().String()
	q := `
		INSERT INTO clients(
			id, name, email, age,
			employment_type, annual_income, risk_profile, communication_preference
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, q,
			id, cmd.Name, cmd.Email, cmd.Age,
			cmd.EmploymentType, cmd.AnnualIncome, cmd.RiskProfile, preference)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("client registered", "id", id, "name", cmd.Name)
	return r.Find(ctx, id)
}

func (r *repo) All(ctx context.Context) ([]Client, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanClient)
	if err != nil {
		return nil, fmt.Errorf("query all clients: %w", err)
	}
	return records, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, "DELETE FROM clients WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("client deleted", "id", id)
	return nil
}
