// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/kgnguhan/agentic-chaser/internal/config"
	"github.com/kgnguhan/agentic-chaser/internal/infrastructure"
	"github.com/kgnguhan/agentic-chaser/pkg/middleware"
	"github.com/kgnguhan/agentic-chaser/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// The returned Domain gives the server access to systems with lifecycle
// hooks of their own, such as the scheduler's interval loop.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, *Domain, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, domain, nil
}
