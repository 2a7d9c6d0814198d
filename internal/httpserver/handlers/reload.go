package handlers

import (
	"net/http"

	"github.com/ecosystem-ai/footer/internal/httpserver/deps"
	"github.com/ecosystem-ai/footer/internal/logger"
)

// Reload triggers a manual reload of the footer menu. With ?flush=true the
// Redis fragment cache is emptied first so every artifact is re-rendered.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("flush") == "true" && d.Store != nil {
			if err := d.Store.FlushCache(r.Context()); err != nil {
				d.Logger.Error("failed to flush fragment cache", logger.Error(err))
				http.Error(w, "failed to flush fragment cache", http.StatusInternalServerError)
				return
			}
			d.Logger.Info("fragment cache flushed via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
		}

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual menu reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("✅ Reload triggered successfully\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("menu reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("⏳ Reload already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}
