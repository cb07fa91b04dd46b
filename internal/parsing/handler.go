package parsing

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kgnguhan/agentic-chaser/pkg/handlers"
	"github.com/kgnguhan/agentic-chaser/pkg/routes"
)

var errEmptyBody = errors.New("message body is required")

// Handler exposes reply parsing over HTTP.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "parsing"),
	}
}

// ParseRequest carries the reply text to analyze.
type ParseRequest struct {
	Body string `json:"body"`
}

// Routes returns the route group definition for parsing endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/parse",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Parse},
		},
	}
}

func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[ParseRequest](r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(req.Body) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errEmptyBody)
		return
	}

	parsed, err := h.sys.Parse(r.Context(), req.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, parsed)
}
