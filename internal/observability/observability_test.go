package observability

import (
	"context"
	"reflect"
	"testing"

	"wordacy/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	autosdk "go.opentelemetry.io/auto/sdk"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestSetupObservability_AllEnabled(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		EnableTracing: true,
		EnableMetrics: true,
		EnableLogging: true,
		ServiceName:   "test-service",
		Protocol:      "grpc",
		Endpoint:      "localhost:4317",
		Insecure:      true,
		SamplingRate:  1.0,
	}
	p, err := SetupObservability(cfg, "test-service", "info")
	require.NoError(t, err)
	require.NotNil(t, p.Tracer)
	require.NotNil(t, p.Meter)
	require.NotNil(t, p.Logger)
}

func TestSetupObservability_NoneEnabled(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		ServiceName: "test-service",
		Protocol:    "grpc",
	}
	p, err := SetupObservability(cfg, "", "info")
	require.NoError(t, err)
	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	require.NotNil(t, p.Logger) // Logger is always returned (no-op when disabled)

	p.Shutdown(context.Background())
}

func TestSetupObservability_ServiceNameOverride(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{ServiceName: "wordacy"}
	_, err := SetupObservability(cfg, "wordacy-generate", "error")
	require.NoError(t, err)
	assert.Equal(t, "wordacy-generate", cfg.ServiceName)
}

func TestLogger_TraceCorrelation(_ *testing.T) {
	logger := NewLogger(&config.OpenTelemetryConfig{EnableLogging: true})
	ctx := context.Background()
	logger.Info(ctx, "test message")
	logger.Error(ctx, "test error", nil)
	ctx, span := noop.NewTracerProvider().Tracer("test").Start(ctx, "test-span")
	logger.Info(ctx, "test message with span")
	span.End()
}

func TestSetupObservability_UseAutoSDK(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		EnableTracing:  true,
		UseAutoSDK:     true,
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
	}
	p, err := SetupObservability(cfg, "test-service", "info")
	require.NoError(t, err)
	require.NotNil(t, p.Tracer)

	_, isStandardSDK := p.Tracer.(*sdktrace.TracerProvider)
	require.False(t, isStandardSDK, "Expected Auto SDK TracerProvider, got standard SDK")
	require.Equal(t, reflect.TypeOf(autosdk.TracerProvider()), reflect.TypeOf(p.Tracer))
}

func TestSetupObservability_StandardSDK(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		EnableTracing:  true,
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Protocol:       "grpc",
		Endpoint:       "localhost:4317",
		Insecure:       true,
		SamplingRate:   1.0,
	}
	p, err := SetupObservability(cfg, "test-service", "info")
	require.NoError(t, err)

	_, isStandardSDK := p.Tracer.(*sdktrace.TracerProvider)
	require.True(t, isStandardSDK, "Expected standard SDK TracerProvider")
	p.Shutdown(context.Background())
}

func TestSetupObservability_InvalidProtocol(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		EnableMetrics: true,
		ServiceName:   "test-service",
		Protocol:      "invalid",
	}
	_, err := SetupObservability(cfg, "test-service", "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported otel protocol")
}

func TestInitStandardTracing(t *testing.T) {
	tests := []struct {
		name     string
		protocol string
		endpoint string
		wantErr  bool
	}{
		{name: "grpc", protocol: "grpc", endpoint: "localhost:4317"},
		{name: "http", protocol: "http", endpoint: "localhost:4318"},
		{name: "invalid", protocol: "invalid", endpoint: "localhost:4317", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.OpenTelemetryConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Protocol:       tt.protocol,
				Endpoint:       tt.endpoint,
				Insecure:       true,
				SamplingRate:   0.5,
			}
			tp, err := InitStandardTracing(cfg)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, tp)
				require.Contains(t, err.Error(), "unsupported otel protocol")
				return
			}
			require.NoError(t, err)
			_, ok := tp.(*sdktrace.TracerProvider)
			require.True(t, ok, "Expected *sdktrace.TracerProvider")
		})
	}
}

func TestDatasetMetrics(t *testing.T) {
	reader := metric.NewManualReader()
	mp := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := NewDatasetMetricsWithMeter(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordsWritten(ctx, 21, AttributeCatalogVersion("v1"))
	m.RecordsWritten(ctx, 21, AttributeCatalogVersion("v1"))
	m.VerbResolved(ctx, 0)
	m.VerbResolved(ctx, 4)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			require.True(t, ok, md.Name)
			for _, dp := range sum.DataPoints {
				got[md.Name] += dp.Value
			}
		}
	}
	assert.Equal(t, int64(42), got[MetricRecordsWritten])
	assert.Equal(t, int64(2), got[MetricVerbsResolved])
	assert.Equal(t, int64(4), got[MetricOverridesApplied])
}

func TestDatasetMetrics_NilIsNoop(_ *testing.T) {
	var m *DatasetMetrics
	m.RecordsWritten(context.Background(), 3)
	m.VerbResolved(context.Background(), 1)
}
