package documents

import (
	"context"
	"io"

	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id string) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Delete(ctx context.Context, id string) error

	// Download streams the stored file along with its metadata. The caller
	// owns the reader.
	Download(ctx context.Context, id string) (io.ReadCloser, *Document, error)

	// ForClient returns every document the client has uploaded, newest first.
	ForClient(ctx context.Context, clientID string) ([]Document, error)

	// AwaitingVerification returns unprocessed documents that are not linked
	// to a case, oldest first, capped at limit.
	AwaitingVerification(ctx context.Context, limit int) ([]Document, error)

	// Process runs the verification pass: confidence extraction, the quality
	// rules, and persistence of the outcome. Documents that pass are promoted
	// into the accepted container. Returns ErrAlreadyProcessed if the
	// document has already been through verification.
	Process(ctx context.Context, id string) (*Document, error)
}
