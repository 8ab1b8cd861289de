// Package metrics exposes run instrumentation through an OpenTelemetry meter
// backed by the Prometheus registry.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"hunter/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics holds the instruments recorded during a run. A nil *Metrics is a
// valid no-op recorder, so callers never have to branch on whether metrics
// are enabled.
type Metrics struct {
	provider *sdkmetric.MeterProvider

	checks        metric.Int64Counter
	checkDuration metric.Float64Histogram
	sourceNames   metric.Int64Counter
}

// New wires an OpenTelemetry meter into the default Prometheus registry and
// creates the run instruments.
func New() (*Metrics, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter("hunter")

	checks, err := meter.Int64Counter("hunter_checks_total",
		metric.WithDescription("Domains checked, by final status."))
	if err != nil {
		return nil, fmt.Errorf("could not create checks counter: %w", err)
	}

	checkDuration, err := meter.Float64Histogram("hunter_check_duration_seconds",
		metric.WithDescription("Two-tier resolution latency per domain."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	sourceNames, err := meter.Int64Counter("hunter_source_names_total",
		metric.WithDescription("Raw names fetched, by source."))
	if err != nil {
		return nil, fmt.Errorf("could not create source counter: %w", err)
	}

	return &Metrics{
		provider:      provider,
		checks:        checks,
		checkDuration: checkDuration,
		sourceNames:   sourceNames,
	}, nil
}

// RecordCheck records one resolved domain.
func (m *Metrics) RecordCheck(ctx context.Context, status domain.Status, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("status", string(status)))
	m.checks.Add(ctx, 1, attrs)
	m.checkDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordSource records the size of one source fetch.
func (m *Metrics) RecordSource(ctx context.Context, source string, names int) {
	if m == nil {
		return
	}

	m.sourceNames.Add(ctx, int64(names), metric.WithAttributes(attribute.String("source", source)))
}

// Shutdown flushes the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}

	return m.provider.Shutdown(ctx)
}

// Handler returns an HTTP mux serving the Prometheus scrape endpoint and the
// pprof profiles.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
