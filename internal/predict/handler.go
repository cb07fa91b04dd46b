package predict

import (
	"log/slog"
	"net/http"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/pkg/handlers"
	"github.com/kgnguhan/agentic-chaser/pkg/routes"
)

// Handler exposes prediction endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "predict"),
	}
}

// Routes returns the route group definition for prediction endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/predict",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/cases/{id}", Handler: h.ForCase},
			{Method: "GET", Pattern: "/clients/{clientId}", Handler: h.ForClient},
		},
	}
}

func (h *Handler) ForCase(w http.ResponseWriter, r *http.Request) {
	p, err := h.sys.ForCase(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, cases.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

func (h *Handler) ForClient(w http.ResponseWriter, r *http.Request) {
	p, err := h.sys.ForClient(r.Context(), r.PathValue("clientId"))
	if err != nil {
		handlers.RespondError(w, h.logger, cases.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}
