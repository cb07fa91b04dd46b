package api

import (
	"net/http"

	"github.com/kgnguhan/agentic-chaser/internal/config"
	"github.com/kgnguhan/agentic-chaser/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Clients.Handler().Routes(),
		domain.Cases.Handler().Routes(),
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Communications.Handler().Routes(),
		domain.PostAdvice.Handler().Routes(),
		domain.FactFind.Handler().Routes(),
		domain.Dashboard.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Parsing.Handler().Routes(),
		domain.Predict.Handler().Routes(),
		domain.Scheduler.Handler().Routes(),
	)
}
