package factfind

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kgnguhan/agentic-chaser/pkg/handlers"
	"github.com/kgnguhan/agentic-chaser/pkg/routes"
)

// Handler provides HTTP endpoints for fact-find operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "factfind"),
	}
}

// Routes returns the route group definition for fact-find endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/fact-find",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/queue", Handler: h.Queue},
			{Method: "GET", Pattern: "/{clientId}", Handler: h.Status},
		},
	}
}

// Status returns a client's fact-find progress.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.sys.Status(r.Context(), r.PathValue("clientId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}

// Queue returns the fact-find chase queue, optionally capped by a limit
// query parameter.
func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	queue, err := h.sys.ChaseQueue(r.Context(), limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, queue)
}
