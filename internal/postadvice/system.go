package postadvice

import (
	"context"

	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
)

// System defines the public contract for post-advice follow-up operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Item], error)

	Find(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, cmd CreateCommand) (*Item, error)
	UpdateStatus(ctx context.Context, id, status string) (*Item, error)

	// ForClient returns the client's follow-up items in reminder order.
	ForClient(ctx context.Context, clientID string) ([]Item, error)

	// Outstanding returns incomplete follow-up items in reminder order:
	// nearest deadline first, undated items last, longest outstanding
	// breaking ties. Capped at limit.
	Outstanding(ctx context.Context, limit int) ([]Item, error)

	// Tick advances the outstanding-day counter and deadline countdown on
	// every incomplete item. Returns the number of items advanced.
	Tick(ctx context.Context) (int, error)
}
