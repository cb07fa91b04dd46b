package cases

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kgnguhan/agentic-chaser/pkg/handlers"
	"github.com/kgnguhan/agentic-chaser/pkg/pagination"
	"github.com/kgnguhan/agentic-chaser/pkg/routes"
)

// Handler provides HTTP endpoints for case operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

type verificationRequest struct {
	Passed bool `json:"passed"`
}

type submissionRequest struct {
	Reference string `json:"reference_number"`
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "cases"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for case endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/cases",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "/{id}/escalate", Handler: h.Escalate},
			{Method: "POST", Pattern: "/{id}/documents/{documentId}", Handler: h.LinkDocument},
			{Method: "POST", Pattern: "/{id}/verification", Handler: h.ResolveVerification},
			{Method: "POST", Pattern: "/{id}/submit", Handler: h.MarkSubmitted},
			{Method: "POST", Pattern: "/{id}/provider-response", Handler: h.MarkProviderInfoReceived},
			{Method: "POST", Pattern: "/{id}/complete", Handler: h.Complete},
		},
	}
}

// List returns a paginated list of cases with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single case by its path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	c, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching cases.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[SearchRequest](r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create opens a new case for a client and provider.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[CreateCommand](r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if cmd.ClientID == "" || cmd.ProviderName == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			errors.New("client_id and provider_name required"))
		return
	}

	c, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, c)
}

// Escalate flags a case for advisor intervention.
func (h *Handler) Escalate(w http.ResponseWriter, r *http.Request) {
	h.respondTransition(w, r, func() (*Case, error) {
		return h.sys.Escalate(r.Context(), r.PathValue("id"))
	})
}

// LinkDocument attaches an uploaded document to a case.
func (h *Handler) LinkDocument(w http.ResponseWriter, r *http.Request) {
	h.respondTransition(w, r, func() (*Case, error) {
		return h.sys.LinkDocument(r.Context(), r.PathValue("id"), r.PathValue("documentId"))
	})
}

// ResolveVerification records the outcome of a pending document verification.
func (h *Handler) ResolveVerification(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[verificationRequest](r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	h.respondTransition(w, r, func() (*Case, error) {
		return h.sys.ResolveVerification(r.Context(), r.PathValue("id"), req.Passed)
	})
}

// MarkSubmitted records that the signed LOA has been sent to the provider.
// An optional body carries the provider's reference number.
func (h *Handler) MarkSubmitted(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[submissionRequest](r.Body)
	if err != nil {
		req = submissionRequest{}
	}

	h.respondTransition(w, r, func() (*Case, error) {
		return h.sys.MarkSubmitted(r.Context(), r.PathValue("id"), req.Reference)
	})
}

// MarkProviderInfoReceived records a complete provider response.
func (h *Handler) MarkProviderInfoReceived(w http.ResponseWriter, r *http.Request) {
	h.respondTransition(w, r, func() (*Case, error) {
		return h.sys.MarkProviderInfoReceived(r.Context(), r.PathValue("id"))
	})
}

// Complete closes a case once the client has been notified.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.respondTransition(w, r, func() (*Case, error) {
		return h.sys.Complete(r.Context(), r.PathValue("id"))
	})
}

func (h *Handler) respondTransition(w http.ResponseWriter, r *http.Request, fn func() (*Case, error)) {
	c, err := fn()
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}
