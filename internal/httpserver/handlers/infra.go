package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	Sections    *int   `json:"sections,omitempty"`
	Links       *int   `json:"links,omitempty"`
	Source      string `json:"source,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	LastReload  string `json:"last_reload,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		components := map[string]componentStatus{
			"catalog": catalogStatus(d),
			"redis":   checkRedis(r.Context(), d),
			"menu":    menuStatus(d),
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		})
	}
}

func catalogStatus(d deps.Deps) componentStatus {
	footer, fp := d.Catalog.Snapshot()
	if footer == nil {
		return componentStatus{OK: false, Source: string(d.Catalog.Source()), Error: "no snapshot loaded"}
	}

	sections := len(footer.Sections)
	links := footer.ItemCount() + len(footer.Socials)
	lastReload := "never"
	if t := d.Catalog.GetLastReload(); !t.IsZero() {
		lastReload = t.Format("2006-01-02 15:04:05")
	}

	return componentStatus{
		OK:          true,
		Sections:    &sections,
		Links:       &links,
		Source:      string(d.Catalog.Source()),
		Fingerprint: fp,
		LastReload:  lastReload,
	}
}

func menuStatus(d deps.Deps) componentStatus {
	if d.MenuFile == "" {
		return componentStatus{OK: true, Mode: "builtin"}
	}
	return componentStatus{OK: true, Mode: "file", Source: d.MenuFile}
}

// determineServingMode summarizes the components: no snapshot is critical,
// an unconfigured Redis is the normal render-per-request mode and an
// unreachable one is degraded.
func determineServingMode(components map[string]componentStatus) string {
	if c, ok := components["catalog"]; ok && !c.OK {
		return "critical"
	}
	if redis, ok := components["redis"]; ok && !redis.OK {
		if redis.Mode == "disabled" {
			return "render-per-request"
		}
		return "degraded"
	}
	return "cached"
}

func checkRedis(parent context.Context, d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "render-per-request",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(parent, 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "render-per-request",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "fragment-cache-enabled",
	}
}
