package dashboard

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kgnguhan/agentic-chaser/internal/cases"
	"github.com/kgnguhan/agentic-chaser/internal/clients"
	"github.com/kgnguhan/agentic-chaser/pkg/handlers"
	"github.com/kgnguhan/agentic-chaser/pkg/routes"
)

const defaultQueueLimit = 10

// Handler provides HTTP endpoints for the dashboard read views.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "dashboard"),
	}
}

// Routes returns the route group definition for dashboard endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/dashboard",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/queue", Handler: h.PriorityQueue},
			{Method: "GET", Pattern: "/cases/{id}", Handler: h.CaseDetail},
			{Method: "GET", Pattern: "/providers", Handler: h.ProviderSummaries},
			{Method: "GET", Pattern: "/providers/{name}", Handler: h.ProviderDetail},
			{Method: "GET", Pattern: "/clients", Handler: h.ClientSummaries},
			{Method: "GET", Pattern: "/clients/{id}", Handler: h.ClientDetail},
		},
	}
}

// PriorityQueue returns the top open cases. Query parameters: limit (0 for
// all) and chase_type (client or provider).
func (h *Handler) PriorityQueue(w http.ResponseWriter, r *http.Request) {
	limit := defaultQueueLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	queue, err := h.sys.PriorityQueue(r.Context(), limit, r.URL.Query().Get("chase_type"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, queue)
}

// CaseDetail returns one case with its client and priority inputs.
func (h *Handler) CaseDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.sys.CaseDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, cases.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, detail)
}

// ProviderSummaries returns the open caseload per provider.
func (h *Handler) ProviderSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.sys.ProviderSummaries(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summaries)
}

// ProviderDetail returns a provider's open cases ordered by priority.
func (h *Handler) ProviderDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.sys.ProviderDetail(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, detail)
}

// ClientSummaries returns the client table rows.
func (h *Handler) ClientSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.sys.ClientSummaries(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summaries)
}

// ClientDetail returns the full client panel.
func (h *Handler) ClientDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.sys.ClientDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, clients.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, detail)
}
