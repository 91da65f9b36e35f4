package observability

import (
	"context"

	"wordacy/internal/config"
	contextutils "wordacy/internal/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// InitMetrics initializes OpenTelemetry metrics
func InitMetrics(cfg *config.OpenTelemetryConfig) (result0 *metric.MeterProvider, err error) {
	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrInternalError, "failed to create otel resource: %w", err)
	}

	var exporter metric.Exporter
	switch cfg.Protocol {
	case "grpc":
		opts := []otlpmetricgrpc.Option{
			otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
			otlpmetricgrpc.WithHeaders(cfg.Headers),
		}
		if cfg.Insecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		}
		exp, err := otlpmetricgrpc.New(ctx, opts...)
		if err != nil {
			return nil, contextutils.WrapErrorf(contextutils.ErrInternalError, "failed to create otlp grpc metric exporter: %w", err)
		}
		exporter = exp
	case "http":
		opts := []otlpmetrichttp.Option{
			otlpmetrichttp.WithEndpoint(cfg.Endpoint),
			otlpmetrichttp.WithHeaders(cfg.Headers),
		}
		if cfg.Insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, contextutils.WrapErrorf(contextutils.ErrInternalError, "failed to create otlp http metric exporter: %w", err)
		}
		exporter = exp
	default:
		return nil, contextutils.WrapErrorf(contextutils.ErrInternalError, "unsupported otel protocol: %s", cfg.Protocol)
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter)),
		metric.WithResource(res),
	)
	return mp, nil
}

// Metric names
const (
	MetricRecordsWritten   = "wordacy.records.written"
	MetricVerbsResolved    = "wordacy.verbs.resolved"
	MetricOverridesApplied = "wordacy.overrides.applied"
)

// DatasetMetrics counts what a synthesis run produced. A nil *DatasetMetrics records nothing.
type DatasetMetrics struct {
	recordsWritten   otelmetric.Int64Counter
	verbsResolved    otelmetric.Int64Counter
	overridesApplied otelmetric.Int64Counter
}

// NewDatasetMetrics creates the dataset counters on the global meter provider
func NewDatasetMetrics() (*DatasetMetrics, error) {
	return NewDatasetMetricsWithMeter(otel.Meter(config.ServiceName))
}

// NewDatasetMetricsWithMeter creates the dataset counters on meter
func NewDatasetMetricsWithMeter(meter otelmetric.Meter) (*DatasetMetrics, error) {
	records, err := meter.Int64Counter(MetricRecordsWritten,
		otelmetric.WithDescription("JSONL records written"),
		otelmetric.WithUnit("{record}"))
	if err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrInternalError, "failed to create %s counter: %w", MetricRecordsWritten, err)
	}
	verbs, err := meter.Int64Counter(MetricVerbsResolved,
		otelmetric.WithDescription("Verbs whose forms were resolved"),
		otelmetric.WithUnit("{verb}"))
	if err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrInternalError, "failed to create %s counter: %w", MetricVerbsResolved, err)
	}
	overrides, err := meter.Int64Counter(MetricOverridesApplied,
		otelmetric.WithDescription("Form fields taken from the override table instead of the rules"),
		otelmetric.WithUnit("{field}"))
	if err != nil {
		return nil, contextutils.WrapErrorf(contextutils.ErrInternalError, "failed to create %s counter: %w", MetricOverridesApplied, err)
	}
	return &DatasetMetrics{
		recordsWritten:   records,
		verbsResolved:    verbs,
		overridesApplied: overrides,
	}, nil
}

// RecordsWritten adds n written records
func (m *DatasetMetrics) RecordsWritten(ctx context.Context, n int, attrs ...attribute.KeyValue) {
	if m == nil || n == 0 {
		return
	}
	m.recordsWritten.Add(ctx, int64(n), otelmetric.WithAttributes(attrs...))
}

// VerbResolved counts one resolved verb and how many of its fields came from overrides
func (m *DatasetMetrics) VerbResolved(ctx context.Context, overridden int, attrs ...attribute.KeyValue) {
	if m == nil {
		return
	}
	m.verbsResolved.Add(ctx, 1, otelmetric.WithAttributes(attrs...))
	if overridden > 0 {
		m.overridesApplied.Add(ctx, int64(overridden), otelmetric.WithAttributes(attrs...))
	}
}
