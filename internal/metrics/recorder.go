package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "footer"

// Recorder exposes footer service metrics. A nil *Recorder is valid and
// records nothing, which keeps call sites free of nil checks.
type Recorder struct {
	registry       *prom.Registry
	renders        *prom.CounterVec
	renderDuration *prom.HistogramVec
	cacheResults   *prom.CounterVec
	reloads        *prom.CounterVec
	sections       prom.Gauge
	links          prom.Gauge
}

// NewRecorder registers the footer metrics on a fresh registry together
// with the Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prom.NewRegistry()
	r := &Recorder{
		registry: reg,
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Rendered artifacts by kind and outcome",
		}, []string{"kind", "result"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering an artifact",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		cacheResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fragment_cache_total",
			Help:      "Fragment cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		reloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Menu reloads by source and outcome",
		}, []string{"source", "result"}),
		sections: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sections",
			Help:      "Number of menu sections in the live snapshot",
		}),
		links: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "links",
			Help:      "Number of menu and social links in the live snapshot",
		}),
	}
	reg.MustRegister(
		r.renders, r.renderDuration, r.cacheResults, r.reloads, r.sections, r.links,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) ObserveRender(kind string, d time.Duration, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.renders.WithLabelValues(kind, result).Inc()
	r.renderDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (r *Recorder) IncCache(result string) {
	if r == nil {
		return
	}
	r.cacheResults.WithLabelValues(result).Inc()
}

func (r *Recorder) IncReload(source string, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.reloads.WithLabelValues(source, result).Inc()
}

// SetSnapshot records the shape of the live snapshot.
func (r *Recorder) SetSnapshot(sections, links int) {
	if r == nil {
		return
	}
	r.sections.Set(float64(sections))
	r.links.Set(float64(links))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
