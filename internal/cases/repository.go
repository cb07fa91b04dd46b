package cases

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

const defaultSLADays = 15

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a case repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "cases"),
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
) (*pagination.PageResult[Case], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ProviderName", "ClientName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count cases: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCase)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Case, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCase)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Case, error) {
	sla := cmd.SLADays
	if sla == 0 {
		sla = defaultSLADays
	}

	id := uuid.New().String()
	q := `
		INSERT INTO loa_cases(id, client_id, provider_name, state, sla_days, sla_days_remaining, pension_value)
		VALUES ($1, $2, $3, $4, $5, $5, $6)`

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, q,
			id, cmd.ClientID, cmd.ProviderName, StateAwaitingClientSignature, sla, cmd.PensionValue)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("case opened", "id", id, "client", cmd.ClientID, "provider", cmd.ProviderName)
	return r.Find(ctx, id)
}

func (r *repo) Active(ctx context.Context) ([]Case, error) {
	state := string(StateComplete)
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereNotEquals("State", &state).
		Build()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanCase)
	if err != nil {
		return nil, fmt.Errorf("query active cases: %w", err)
	}
	return records, nil
}

func (r *repo) ActiveForClient(ctx context.Context, clientID string) ([]Case, error) {
	state := string(StateComplete)
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("ClientID", &clientID).
		WhereNotEquals("State", &state).
		Build()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanCase)
	if err != nil {
		return nil, fmt.Errorf("query client cases: %w", err)
	}
	return records, nil
}

func (r *repo) Tick(ctx context.Context) (int, error) {
	q := `
		UPDATE loa_cases
		SET days_in_state = days_in_state + 1,
			sla_days_remaining = sla_days_remaining - 1,
			updated_at = now()
		WHERE state <> $1`

	var advanced int64
	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, q, StateComplete)
		if err != nil {
			return err
		}
		advanced, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("advance case clocks: %w", err)
	}

	return int(advanced), nil
}

func (r *repo) ApplyPriority(ctx context.Context, id string, update PriorityUpdate) error {
	q := `
		UPDATE loa_cases
		SET priority_score = $2,
			needs_advisor_intervention = needs_advisor_intervention OR $3,
			sla_overdue = sla_overdue OR $4,
			updated_at = now()
		WHERE id = $1`

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, q, id, update.Score, update.Escalate, update.SLAOverdue)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (r *repo) Escalate(ctx context.Context, id string) (*Case, error) {
	q := `
		UPDATE loa_cases
		SET needs_advisor_intervention = TRUE,
			escalated_at = COALESCE(escalated_at, now()),
			updated_at = now()
		WHERE id = $1`

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, q, id)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("case escalated", "id", id)
	return r.Find(ctx, id)
}

func (r *repo) LinkDocument(ctx context.Context, id, documentID string) (*Case, error) {
	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		state, clientID, err := lockCase(ctx, tx, id)
		if err != nil {
			return err
		}
		if !state.AcceptsDocument() {
			return fmt.Errorf("%w: cannot link document in %s", ErrInvalidTransition, state)
		}

		var docClientID string
		err = tx.QueryRowContext(ctx,
			"SELECT client_id FROM documents WHERE id = $1",
			documentID,
		).Scan(&docClientID)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrDocumentNotFound
			}
			return err
		}
		if docClientID != clientID {
			return ErrClientMismatch
		}

		if err := repository.ExecExpectOne(ctx, tx,
			"UPDATE documents SET loa_id = $2, updated_at = now() WHERE id = $1",
			documentID, id,
		); err != nil {
			return err
		}

		return transition(ctx, tx, id, StateDocumentAwaitingVerification,
			"pending_document_id = $3", documentID)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document linked", "case", id, "document", documentID)
	return r.Find(ctx, id)
}

func (r *repo) ResolveVerification(ctx context.Context, id string, passed bool) (*Case, error) {
	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		state, _, err := lockCase(ctx, tx, id)
		if err != nil {
			return err
		}
		if state != StateDocumentAwaitingVerification {
			return fmt.Errorf("%w: no verification pending in %s", ErrInvalidTransition, state)
		}

		if passed {
			return transition(ctx, tx, id, StateSignedReadyForProvider,
				"pending_document_id = NULL, signature_verified = TRUE")
		}
		return transition(ctx, tx, id, StateClientDocumentsRejected,
			"pending_document_id = NULL")
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("verification resolved", "case", id, "passed", passed)
	return r.Find(ctx, id)
}

func (r *repo) MarkSubmitted(ctx context.Context, id, reference string) (*Case, error) {
	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		state, _, err := lockCase(ctx, tx, id)
		if err != nil {
			return err
		}
		if state.Terminal() {
			return ErrCaseComplete
		}
		if state != StateSignedReadyForProvider {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, state, StateSubmittedToProvider)
		}
		return transition(ctx, tx, id, StateSubmittedToProvider, "reference_number = $3", reference)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("case submitted", "id", id, "reference", reference)
	return r.Find(ctx, id)
}

func (r *repo) MarkProviderInfoReceived(ctx context.Context, id string) (*Case, error) {
	return r.transitionFrom(ctx, id, StateProviderInfoReceived, State.ProviderChase)
}

func (r *repo) Complete(ctx context.Context, id string) (*Case, error) {
	return r.transitionFrom(ctx, id, StateComplete, func(state State) bool {
		return state == StateProviderInfoReceived
	})
}

func (r *repo) transitionFrom(
	ctx context.Context,
	id string,
	target State,
	eligible func(State) bool,
) (*Case, error) {
	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		state, _, err := lockCase(ctx, tx, id)
		if err != nil {
			return err
		}
		if state.Terminal() {
			return ErrCaseComplete
		}
		if !eligible(state) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, state, target)
		}
		return transition(ctx, tx, id, target, "")
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("case transitioned", "id", id, "to", target)
	return r.Find(ctx, id)
}

// lockCase reads the case state and client under FOR UPDATE so concurrent
// transitions serialize on the row.
func lockCase(ctx context.Context, tx *sql.Tx, id string) (State, string, error) {
	var raw, clientID string
	err := tx.QueryRowContext(ctx,
		"SELECT state, client_id FROM loa_cases WHERE id = $1 FOR UPDATE",
		id,
	).Scan(&raw, &clientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", "", ErrNotFound
		}
		return "", "", err
	}

	state, err := ParseState(raw)
	if err != nil {
		return "", "", err
	}
	return state, clientID, nil
}

// transition moves the case to target and resets its day counter. Extra is an
// optional additional SET fragment with a single $3 argument.
func transition(ctx context.Context, tx *sql.Tx, id string, target State, extra string, args ...any) error {
	q := "UPDATE loa_cases SET state = $2, days_in_state = 0, updated_at = now()"
	if extra != "" {
		q += ", " + extra
	}
	q += " WHERE id = $1"

	all := append([]any{id, target}, args...)
	return repository.ExecExpectOne(ctx, tx, q, all...)
}
