package workflow

import (
	"log/slog"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/documents"
	"github.com/kgnguhan/agentic-chaser/internal/messaging"
	"github.com/kgnguhan/agentic-chaser/internal/priority"
	"github.com/kgnguhan/agentic-chaser/internal/rpa"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Cases     cases.System
	Documents documents.System
	Messaging messaging.System
	Portal    rpa.System
	Priority  *priority.Engine
	Logger    *slog.Logger
}
