package handlers

import (
	"net/http"

	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
)

// Metrics exposes the prometheus registry.
func Metrics(d deps.Deps) http.Handler {
	if d.Metrics == nil {
		return http.NotFoundHandler()
	}
	return d.Metrics.Handler()
}
