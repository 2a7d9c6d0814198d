package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
	"github.com/ecosystem-ai/footer/internal/httpserver/handlers"
	"github.com/ecosystem-ai/footer/internal/httpserver/mw"
)

func init() { Register(registerMetrics) }

func registerMetrics(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Method("GET", "/metrics", handlers.Metrics(d))
}
