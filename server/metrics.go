package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics of a server instance, kept in own registry so every server can be created independently
type metrics struct {
	registry     *prometheus.Registry
	pageViews    prometheus.Counter
	searches     prometheus.Counter
	feedLoads    *prometheus.CounterVec
	loadDuration prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &metrics{
		registry: reg,
		pageViews: f.NewCounter(prometheus.CounterOpts{
			Name: "newsdeck_page_views_total",
			Help: "The total number of page views started",
		}),
		searches: f.NewCounter(prometheus.CounterOpts{
			Name: "newsdeck_search_events_total",
			Help: "The total number of search input events delivered to page views",
		}),
		feedLoads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdeck_feed_loads_total",
			Help: "The total number of feed document loads by result",
		}, []string{"result"}),
		loadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsdeck_feed_load_duration_seconds",
			Help:    "Duration of feed document load and initial render",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}),
	}
}

// observeLoad records feed load result
func (m *metrics) observeLoad(seconds float64, failed bool) {
	result := "ok"
	if failed {
		result = "failed"
	}
	m.feedLoads.WithLabelValues(result).Inc()
	m.loadDuration.Observe(seconds)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
