// Package metrics exposes authentication counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"linkauth/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements service.AuthMetrics on Prometheus collectors.
type Collector struct {
	operations  *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	tokenIssue  prometheus.Histogram
}

var _ service.AuthMetrics = (*Collector)(nil)

// NewCollector registers the auth metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkauth_operations_total",
			Help: "Auth operations by name and outcome code.",
		}, []string{"operation", "outcome"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkauth_identity_resolutions_total",
			Help: "OAuth identity resolutions by the tier that matched.",
		}, []string{"tier"}),
		tokenIssue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkauth_token_issue_seconds",
			Help:    "Time to sign an access/refresh pair.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}

	reg.MustRegister(c.operations, c.resolutions, c.tokenIssue)

	return c
}

func (c *Collector) RecordOperation(op string, outcome string) {
	c.operations.WithLabelValues(op, outcome).Inc()
}

func (c *Collector) RecordIdentityResolution(tier string) {
	c.resolutions.WithLabelValues(tier).Inc()
}

func (c *Collector) RecordTokenIssue(duration time.Duration) {
	c.tokenIssue.Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry builds a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordOperation(string, string)  {}
func (Nop) RecordIdentityResolution(string) {}
func (Nop) RecordTokenIssue(time.Duration)  {}
