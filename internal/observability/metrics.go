package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/neurobridge-tutorials/internal/platform/envutil"
	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
)

const namespace = "nb"

type Metrics struct {
	handler http.Handler

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge
	apiReqTotal prometheus.Counter
	apiReqError prometheus.Counter

	tutorialsGenerated *prometheus.CounterVec
	sectionsRendered   *prometheus.CounterVec
	generateLatency    *prometheus.HistogramVec
	batchRequests      *prometheus.CounterVec
	batchItems         prometheus.Histogram

	catalogProviders prometheus.Gauge
	catalogFallback  prometheus.Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

// Init returns the process-wide registry, or nil when METRICS_ENABLED is off.
// Every method on a nil *Metrics is a no-op.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics()
		if log != nil {
			log.Info("Observability metrics enabled")
		}
	})
	return instance
}

// NewMetrics builds a metrics set on its own registry, so tests never share state
// with the process default.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "api", Name: "requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "api", Name: "request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "api", Name: "inflight_requests",
			Help: "In-flight API requests.",
		}),
		apiReqTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "api", Name: "requests_total_all",
			Help: "Total API requests (all).",
		}),
		apiReqError: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "api", Name: "requests_error_total",
			Help: "Total API requests with 5xx status.",
		}),

		tutorialsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "tutorials", Name: "generated_total",
			Help: "Tutorials generated by category/provider.",
		}, []string{"category", "provider"}),
		sectionsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "tutorial", Name: "sections_rendered_total",
			Help: "Tutorial sections rendered by category.",
		}, []string{"category"}),
		generateLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "tutorial", Name: "generate_duration_seconds",
			Help:    "Tutorial generation latency in seconds by category.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"category"}),
		batchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "tutorial", Name: "batches_total",
			Help: "Batch generation requests by status.",
		}, []string{"status"}),
		batchItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "tutorial", Name: "batch_items",
			Help:    "Number of tutorials requested per batch.",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),

		catalogProviders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "tutorial", Name: "catalog_providers",
			Help: "Lesson providers loaded into the catalog.",
		}),
		catalogFallback: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "tutorial", Name: "catalog_fallback",
			Help: "1 when the built-in fallback catalog is serving lessons.",
		}),
	}
	reg.MustRegister(
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.apiReqTotal,
		m.apiReqError,
		m.tutorialsGenerated,
		m.sectionsRendered,
		m.generateLatency,
		m.batchRequests,
		m.batchItems,
		m.catalogProviders,
		m.catalogFallback,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

// StartServer serves the exposition on a dedicated listener until ctx is done. It
// returns the bound address, or nil when metrics are disabled or addr is blank.
func (m *Metrics) StartServer(ctx context.Context, log *logger.Logger, addr string) (net.Addr, error) {
	if m == nil {
		return nil, nil
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           http.HandlerFunc(m.WriteHTTP),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = srv.Shutdown(shutdownCtx)
		cancel()
	}()
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if log != nil {
				log.Error("metrics server failed", "error", err, "addr", addr)
			}
		}
	}()
	if log != nil {
		log.Info("metrics server listening", "addr", ln.Addr().String())
	}
	return ln.Addr(), nil
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	m.handler.ServeHTTP(w, r)
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(dur.Seconds())
	m.apiReqTotal.Inc()
	if isServerErrorStatus(status) {
		m.apiReqError.Inc()
	}
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveTutorial(category, provider string, sections int, dur time.Duration) {
	if m == nil {
		return
	}
	m.tutorialsGenerated.WithLabelValues(category, provider).Inc()
	m.sectionsRendered.WithLabelValues(category).Add(float64(sections))
	m.generateLatency.WithLabelValues(category).Observe(dur.Seconds())
}

func (m *Metrics) ObserveBatch(items int, status string) {
	if m == nil {
		return
	}
	m.batchRequests.WithLabelValues(status).Inc()
	m.batchItems.Observe(float64(items))
}

func (m *Metrics) SetCatalog(providers int, fallback bool) {
	if m == nil {
		return
	}
	m.catalogProviders.Set(float64(providers))
	if fallback {
		m.catalogFallback.Set(1)
	} else {
		m.catalogFallback.Set(0)
	}
}

func isServerErrorStatus(status string) bool {
	status = strings.TrimSpace(status)
	return len(status) == 3 && status[0] == '5'
}
