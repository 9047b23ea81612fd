package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards.
// It also observes every call made to the rental API.
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter             metric.Meter
	cacheSizeGauge    metric.Int64ObservableGauge
	pendingGauge      metric.Int64ObservableGauge
	requestCounter    metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	oe, err := newOTelExporter(collector, exporter)
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(oe.meterProvider)
	return oe, nil
}

func newOTelExporter(collector Collector, reader sdkmetric.Reader) (*OTelExporter, error) {
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
	)

	// Create meter with service info
	meter := meterProvider.Meter(
		"locadora-web",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Cached list size gauge (per entity)
	oe.cacheSizeGauge, err = oe.meter.Int64ObservableGauge(
		"locadora.cache.size",
		metric.WithDescription("Number of records in the cached list per entity"),
		metric.WithUnit("{records}"),
		metric.WithInt64Callback(oe.observeCacheSizes),
	)
	if err != nil {
		return fmt.Errorf("creating cache size gauge: %w", err)
	}

	// Pending notifications gauge
	oe.pendingGauge, err = oe.meter.Int64ObservableGauge(
		"locadora.notifications.pending",
		metric.WithDescription("Number of notifications waiting for a page render"),
		metric.WithUnit("{notifications}"),
		metric.WithInt64Callback(oe.observePending),
	)
	if err != nil {
		return fmt.Errorf("creating pending notifications gauge: %w", err)
	}

	oe.requestCounter, err = oe.meter.Int64Counter(
		"locadora.api.requests",
		metric.WithDescription("Calls made to the rental API"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating request counter: %w", err)
	}

	oe.durationHistogram, err = oe.meter.Float64Histogram(
		"locadora.api.duration",
		metric.WithDescription("Duration of calls made to the rental API"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	return nil
}

// ObserveRequest records one API call; it implements resource.Observer
func (oe *OTelExporter) ObserveRequest(ctx context.Context, entity, operation string, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	oe.requestCounter.Add(ctx, 1, attrs)
	oe.durationHistogram.Record(ctx, elapsed.Seconds(), attrs)
}

// observeCacheSizes is a callback that reports cached list sizes
func (oe *OTelExporter) observeCacheSizes(ctx context.Context, observer metric.Int64Observer) error {
	sizes, err := oe.collector.GetCacheSizes(ctx)
	if err != nil {
		return err
	}

	for entity, size := range sizes {
		observer.Observe(size, metric.WithAttributes(
			attribute.String("entity", entity),
		))
	}

	return nil
}

// observePending is a callback that reports queued notifications
func (oe *OTelExporter) observePending(ctx context.Context, observer metric.Int64Observer) error {
	pending, err := oe.collector.GetPendingNotifications(ctx)
	if err != nil {
		return err
	}

	observer.Observe(pending)
	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
