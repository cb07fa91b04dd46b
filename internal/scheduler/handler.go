package scheduler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kgnguhan/agentic-chaser/pkg/handlers"
	"github.com/kgnguhan/agentic-chaser/pkg/routes"
)

// Handler exposes the chase cycle over HTTP.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "scheduler"),
	}
}

// Routes returns the route group definition for scheduler endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/scheduler",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Report},
			{Method: "POST", Pattern: "/run", Handler: h.Run},
		},
	}
}

// Run triggers a chase cycle and returns its report.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	report, err := h.sys.RunCycle(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrCycleInProgress) {
			status = http.StatusConflict
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Report returns the most recent cycle report.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	report := h.sys.LastReport()
	if report == nil {
		handlers.RespondJSON(w, http.StatusOK, map[string]any{
			"status": "no cycles run yet",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}
