// Package metrics registra las métricas HTTP en un registro Prometheus propio
// de cada aplicación.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder contador y histograma de peticiones HTTP.
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewRecorder crea el registro con las métricas HTTP y los collectors de Go y del proceso.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "endpoint", "http_status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_latency_seconds",
			Help:    "Request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}
	r.registry.MustRegister(
		r.requests,
		r.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Observe registra una petición terminada.
func (r *Recorder) Observe(method, endpoint string, status int, elapsed time.Duration) {
	r.latency.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
	r.requests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
}

// Registry expone el registro (tests y collectors adicionales).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler sirve el registro en formato de exposición de texto.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
