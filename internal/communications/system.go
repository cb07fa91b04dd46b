package communications

import (
	"context"

	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
)

// System defines the public contract for the message log.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Message], error)

	Find(ctx context.Context, id string) (*Message, error)
	Record(ctx context.Context, cmd RecordCommand) (*Message, error)

	// RecentClientMessages returns the client's most recent inbound messages,
	// newest first, capped at limit.
	RecentClientMessages(ctx context.Context, clientID string, limit int) ([]Message, error)

	// LabelSentiment attaches a sentiment label to a message.
	LabelSentiment(ctx context.Context, id, sentiment string) error
}
