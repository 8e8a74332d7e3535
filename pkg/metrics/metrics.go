// Package metrics implements the observability hooks with Prometheus
// counters and histograms.
//
// pokequiz is a batch tool, so nothing is scraped. Instead the collected
// values can be written once at exit in the node_exporter textfile format:
//
//	m := metrics.New("pokequiz")
//	m.Install()
//	defer m.WriteTextfile("/var/lib/node_exporter/pokequiz.prom")
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/pokequiz/pkg/observability"
)

// Cache event label values.
const (
	EventHit  = "hit"
	EventMiss = "miss"
	EventSet  = "set"
)

// Collector holds the Prometheus metrics for one process.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPErrors   *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	CacheEvents *prometheus.CounterVec
	CacheBytes  *prometheus.CounterVec

	Retries       prometheus.Counter
	Fetches       *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
}

// New creates a collector with its own registry.
func New(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP responses received, by status.",
		}, []string{"method", "host", "status"}),
		HTTPErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "HTTP requests that failed before a response arrived.",
		}, []string{"method", "host"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "host"}),
		CacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Cache hits, misses and writes.",
		}, []string{"backend", "event"}),
		CacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache.",
		}, []string{"backend"}),
		Retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_retries_total",
			Help:      "Transient fetch failures that were retried.",
		}),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Completed fetches, by source and outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Fetch duration including retries and backoff.",
			Buckets:   []float64{.001, .01, .1, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"source"}),
	}

	c.registry.MustRegister(
		c.HTTPRequests, c.HTTPErrors, c.HTTPDuration,
		c.CacheEvents, c.CacheBytes,
		c.Retries, c.Fetches, c.FetchDuration,
	)
	return c
}

// Registry returns the registry holding every metric of the collector.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Install registers the collector as the global fetch, cache and HTTP hooks.
func (c *Collector) Install() {
	observability.SetFetchHooks(c)
	observability.SetCacheHooks(c)
	observability.SetHTTPHooks(c)
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

// OnRetry implements [observability.FetchHooks].
func (c *Collector) OnRetry(context.Context, string, int, time.Duration, error) {
	c.Retries.Inc()
}

// OnFetchComplete implements [observability.FetchHooks].
func (c *Collector) OnFetchComplete(_ context.Context, _ string, cached bool, d time.Duration, err error) {
	source := "network"
	if cached {
		source = "cache"
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.Fetches.WithLabelValues(source, outcome).Inc()
	c.FetchDuration.WithLabelValues(source).Observe(d.Seconds())
}

// OnCacheHit implements [observability.CacheHooks].
func (c *Collector) OnCacheHit(_ context.Context, backend string) {
	c.CacheEvents.WithLabelValues(backend, EventHit).Inc()
}

// OnCacheMiss implements [observability.CacheHooks].
func (c *Collector) OnCacheMiss(_ context.Context, backend string) {
	c.CacheEvents.WithLabelValues(backend, EventMiss).Inc()
}

// OnCacheSet implements [observability.CacheHooks].
func (c *Collector) OnCacheSet(_ context.Context, backend string, size int) {
	c.CacheEvents.WithLabelValues(backend, EventSet).Inc()
	c.CacheBytes.WithLabelValues(backend).Add(float64(size))
}

// OnRequest implements [observability.HTTPHooks]. Requests are counted when
// they complete.
func (c *Collector) OnRequest(context.Context, string, string, string) {}

// OnResponse implements [observability.HTTPHooks].
func (c *Collector) OnResponse(_ context.Context, method, host, _ string, status int, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, host, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, host).Observe(d.Seconds())
}

// OnError implements [observability.HTTPHooks].
func (c *Collector) OnError(_ context.Context, method, host, _ string, _ error) {
	c.HTTPErrors.WithLabelValues(method, host).Inc()
}

var (
	_ observability.FetchHooks = (*Collector)(nil)
	_ observability.CacheHooks = (*Collector)(nil)
	_ observability.HTTPHooks  = (*Collector)(nil)
)
