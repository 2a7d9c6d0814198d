package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
	"github.com/ecosystem-ai/footer/internal/httpserver/handlers"
	"github.com/ecosystem-ai/footer/internal/httpserver/mw"
)

func init() { Register(registerFooter) }

func registerFooter(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateBurst,
		RefillPerIPPerMin: d.RatePerMinute,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.CORS(d.CORSOrigins), limit)
		r.Options("/footer", handlers.Preflight)
		r.Options("/api/footer", handlers.Preflight)
		r.Get("/footer", handlers.Fragment(d))
		r.Get("/api/footer", handlers.API(d))
	})

	r.With(limit).Get("/", handlers.Page(d))
}
