package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready       bool   `json:"ready"`
	Source      string `json:"source"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Readyz reports ready once a footer snapshot is live.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		footer, fp := d.Catalog.Snapshot()
		ready := footer != nil

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if ready {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready:       ready,
			Source:      string(d.Catalog.Source()),
			Fingerprint: fp,
		})
	}
}
