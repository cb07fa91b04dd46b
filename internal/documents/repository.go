package documents

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kgnguhan/agentic-chaser/internal/ocr"
	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
	"github.com/kgnguhan/agentic-chaser/pkg/query"
	"github.com/kgnguhan/agentic-chaser/pkg/repository"
	"github.com/kgnguhan/agentic-chaser/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	evaluator  ocr.Evaluator
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	evaluator ocr.Evaluator,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		evaluator:  evaluator,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "Type")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Download(ctx context.Context, id string) (io.ReadCloser, *Document, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := r.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download document blob: %w", err)
	}

	return body, doc, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	if cmd.ClientID == "" || cmd.Type == "" || len(cmd.Data) == 0 {
		return nil, fmt.Errorf("%w: client_id, type, and file data required", ErrInvalidFile)
	}

	id := uuid.New().String()
	key := buildStorageKey(id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload document blob: %w", err)
	}

	q := `
		INSERT INTO documents(id, client_id, type, filename, content_type, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	err := repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, q,
			id,
			cmd.ClientID,
			strings.ToLower(strings.TrimSpace(cmd.Type)),
			cmd.Filename,
			cmd.ContentType,
			int64(len(cmd.Data)),
			key,
		)
	})
	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document registered", "id", id, "client", cmd.ClientID, "type", cmd.Type)
	return r.Find(ctx, id)
}

func (r *repo) Delete(ctx context.Context, id string) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	err = repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		return repository.ExecExpectOne(ctx, tx, "DELETE FROM documents WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, doc.StorageKey); delErr != nil {
		r.logger.Warn("blob delete failed after DB delete", "key", doc.StorageKey, "error", delErr)
	}

	r.logger.Info("document deleted", "id", id)
	return nil
}

func (r *repo) ForClient(ctx context.Context, clientID string) ([]Document, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("ClientID", &clientID).
		Build()

	docs, err := repository.QueryMany(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query client documents: %w", err)
	}
	return docs, nil
}

func (r *repo) AwaitingVerification(ctx context.Context, limit int) ([]Document, error) {
	q, args := query.
		NewBuilder(projection, query.SortField{Field: "UploadedAt"}).
		WhereNull("LOAID").
		WhereNull("ProcessedAt").
		BuildLimited(limit)

	docs, err := repository.QueryMany(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query unverified documents: %w", err)
	}
	return docs, nil
}

func (r *repo) Process(ctx context.Context, id string) (*Document, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !doc.Reprocessable() {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyProcessed, id)
	}

	result, err := r.evaluator.Evaluate(ctx, doc.StorageKey, doc.ContentType)
	if err != nil {
		return nil, fmt.Errorf("evaluate document %s: %w", id, err)
	}

	eval := EvaluateQuality(doc.Type, result.Confidence, result.Status.Tag(), doc.IssueList())

	status := StatusRejected
	if eval.Passed {
		status = StatusVerified
	}

	q := `
		UPDATE documents
		SET status = $2,
			ocr_confidence = $3,
			issues = $4,
			needs_review = $5,
			processed_at = now(),
			updated_at = now()
		WHERE id = $1`

	err = repository.ExecTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := repository.ExecExpectOne(ctx, tx, q,
			id, status, result.Confidence, JoinedIssues(eval.Issues), eval.NeedsReview); err != nil {
			return err
		}
		if doc.LOAID == nil {
			return nil
		}
		return refreshCaseQuality(ctx, tx, *doc.LOAID)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if eval.Passed {
		if acceptErr := r.storage.Accept(ctx, doc.StorageKey); acceptErr != nil {
			r.logger.Warn("accepted copy failed", "key", doc.StorageKey, "error", acceptErr)
		}
	}

	r.logger.Info("document processed",
		"id", id,
		"status", status,
		"needs_review", eval.NeedsReview,
		"issues", len(eval.Issues))

	return r.Find(ctx, id)
}

// refreshCaseQuality recomputes the case's document quality score as the
// average OCR confidence across its processed documents.
func refreshCaseQuality(ctx context.Context, tx *sql.Tx, loaID string) error {
	q := `
		UPDATE loa_cases
		SET document_quality_score = sub.score,
			updated_at = now()
		FROM (
			SELECT avg(ocr_confidence) AS score
			FROM documents
			WHERE loa_id = $1 AND ocr_confidence IS NOT NULL
		) sub
		WHERE id = $1`

	if _, err := tx.ExecContext(ctx, q, loaID); err != nil {
		return fmt.Errorf("refresh case quality %s: %w", loaID, err)
	}
	return nil
}

func buildStorageKey(id, filename string) string {
	return fmt.Sprintf("documents/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "document"
	}
	return url.PathEscape(name)
}
