package clients

import (
	"context"

	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
)

// System defines the public contract for client domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Client], error)

	Find(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, cmd CreateCommand) (*Client, error)
	Delete(ctx context.Context, id string) error

	// All returns every client ordered by name.
	All(ctx context.Context) ([]Client, error)
}
