package mw

import (
	"net/http"
	"strings"
)

const (
	corsMethods = "GET, HEAD, OPTIONS"
	corsHeaders = "Accept, Content-Type, If-None-Match"
	corsMaxAge  = "600"
)

// CORS lets other origins fetch the footer. "*" allows any origin; an empty
// list disables CORS headers entirely. Preflight requests are answered here.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAny = true
			continue
		}
		allowed[strings.TrimSuffix(strings.ToLower(o), "/")] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if !allowAny && len(allowed) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			// Allow-list responses vary by Origin even when the request has none.
			if !allowAny {
				h.Add("Vary", "Origin")
			}

			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowAny {
				h.Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[strings.ToLower(origin)]; ok {
				h.Set("Access-Control-Allow-Origin", origin)
			} else {
				// Unknown origin: serve without CORS headers, the browser blocks it.
				next.ServeHTTP(w, r)
				return
			}
			h.Set("Access-Control-Expose-Headers", "ETag, X-Footer-Cache")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Allow-Headers", corsHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
