package prompts

import (
	"context"

	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
)

// System defines the public contract for prompt domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Prompt], error)

	Find(ctx context.Context, id string) (*Prompt, error)
	Create(ctx context.Context, cmd CreateCommand) (*Prompt, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Prompt, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*Prompt, error)
	Deactivate(ctx context.Context, id string) (*Prompt, error)

	// ActiveForKind returns the active override for a kind, or nil when the
	// hardcoded default applies.
	ActiveForKind(ctx context.Context, kind Kind) (*Prompt, error)
}
