package cases

import (
	"context"

	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
)

// System defines the public contract for case domain operations. Transition
// methods validate the current state inside a transaction and return
// ErrInvalidTransition when the case is not in an eligible stage.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Case], error)

	Find(ctx context.Context, id string) (*Case, error)
	Create(ctx context.Context, cmd CreateCommand) (*Case, error)

	// Active returns all cases that have not reached the terminal state,
	// ordered by priority.
	Active(ctx context.Context) ([]Case, error)
	// ActiveForClient returns the client's open cases ordered by priority.
	ActiveForClient(ctx context.Context, clientID string) ([]Case, error)

	// Tick advances every open case by one day: days in state increments and
	// the SLA countdown decrements, going negative once the deadline passes.
	// Returns the number of cases advanced.
	Tick(ctx context.Context) (int, error)

	// ApplyPriority persists a scoring outcome. Intervention and overdue
	// flags are only ever raised here, never cleared.
	ApplyPriority(ctx context.Context, id string, update PriorityUpdate) error

	// Escalate flags the case for advisor intervention. Idempotent: the
	// escalation timestamp is stamped once and the state is left unchanged.
	Escalate(ctx context.Context, id string) (*Case, error)

	// LinkDocument attaches a client document to the case and moves it to
	// verification. The document must belong to the case's client.
	LinkDocument(ctx context.Context, id, documentID string) (*Case, error)

	// ResolveVerification clears the pending document pointer and moves the
	// case forward on a pass or back to rejected on a fail.
	ResolveVerification(ctx context.Context, id string, passed bool) (*Case, error)

	// MarkSubmitted records that the signed LOA has been sent to the
	// provider, storing the portal reference on the case.
	MarkSubmitted(ctx context.Context, id, reference string) (*Case, error)

	// MarkProviderInfoReceived records a complete provider response.
	MarkProviderInfoReceived(ctx context.Context, id string) (*Case, error)

	// Complete closes the case after the client has been notified.
	Complete(ctx context.Context, id string) (*Case, error)
}
