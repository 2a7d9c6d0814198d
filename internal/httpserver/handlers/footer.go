package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecosystem-ai/footer/internal/domain"
	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
	"github.com/ecosystem-ai/footer/internal/logger"
	"github.com/ecosystem-ai/footer/internal/render"
)

const footerCacheControl = "public, max-age=300"

// Fragment serves the embeddable footer HTML.
func Fragment(d deps.Deps) http.HandlerFunc {
	return serveHTML(d, render.KindFragment)
}

// Page serves a standalone HTML page with the footer.
func Page(d deps.Deps) http.HandlerFunc {
	return serveHTML(d, render.KindPage)
}

func serveHTML(d deps.Deps, kind render.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		footer, fp := d.Catalog.Snapshot()
		if footer == nil {
			http.Error(w, "footer not loaded yet", http.StatusServiceUnavailable)
			return
		}

		now := d.Now()
		etag := fmt.Sprintf(`"%s-%s-%d"`, d.Renderer.Variant(kind), fp, now.Year())
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", footerCacheControl)

		if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		body, cacheState := cachedHTML(d, r, kind, footer, fp, now)
		if body == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Footer-Cache", cacheState)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

// cachedHTML returns the rendered artifact, going through the Redis fragment
// cache when one is configured. A nil body means rendering failed.
func cachedHTML(d deps.Deps, r *http.Request, kind render.Kind, footer *domain.Footer, fp string, now time.Time) ([]byte, string) {
	ctx := r.Context()
	year := now.Year()
	variant := d.Renderer.Variant(kind)

	if d.Store != nil {
		cached, err := d.Store.GetCachedFragment(ctx, variant, fp, year)
		switch {
		case err != nil:
			d.Metrics.IncCache("error")
			d.Logger.Warn("fragment cache read failed, rendering",
				logger.String("kind", string(kind)),
				logger.Error(err))
		case cached != nil:
			d.Metrics.IncCache("hit")
			return cached, "hit"
		default:
			d.Metrics.IncCache("miss")
		}
	}

	start := time.Now()
	body, err := d.Renderer.Bytes(kind, footer, now)
	d.Metrics.ObserveRender(string(kind), time.Since(start), err)
	if err != nil {
		d.Logger.Error("failed to render footer",
			logger.String("kind", string(kind)),
			logger.Error(err))
		return nil, ""
	}

	if d.Store == nil {
		return body, "bypass"
	}

	if err := d.Store.CacheFragment(ctx, variant, fp, year, body, d.CacheTTL); err != nil {
		d.Logger.Warn("failed to cache fragment",
			logger.String("kind", string(kind)),
			logger.Error(err))
	}
	return body, "miss"
}

type footerResponse struct {
	Brand       string               `json:"brand"`
	Copyright   string               `json:"copyright"`
	Fingerprint string               `json:"fingerprint"`
	Source      string               `json:"source"`
	Layout      domain.Layout        `json:"layout"`
	Sections    []domain.MenuSection `json:"sections"`
	Socials     []socialResponse     `json:"socials"`
}

type socialResponse struct {
	URL     string           `json:"url"`
	Network string           `json:"network"`
	Style   domain.IconStyle `json:"style"`
}

// API serves the live footer as JSON for non-HTML consumers.
func API(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		footer, fp := d.Catalog.Snapshot()
		if footer == nil {
			http.Error(w, "footer not loaded yet", http.StatusServiceUnavailable)
			return
		}

		socials := make([]socialResponse, 0, len(footer.Socials))
		for _, s := range footer.Socials {
			socials = append(socials, socialResponse{
				URL:     s.URL,
				Network: render.DetectNetwork(s.URL).Key,
				Style:   s.Style,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", footerCacheControl)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(footerResponse{
			Brand:       footer.Brand,
			Copyright:   footer.Copyright(d.Now()),
			Fingerprint: fp,
			Source:      string(d.Catalog.Source()),
			Layout:      footer.Layout,
			Sections:    footer.Sections,
			Socials:     socials,
		})
	}
}

// Preflight answers OPTIONS requests that the CORS middleware let through.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET, HEAD, OPTIONS")
	w.WriteHeader(http.StatusNoContent)
}
