package observability

import (
	"context"
	"errors"
	"testing"

	"wordacy/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{Logger: zap.New(core)}, logs
}

func TestLogWithContextAddsTraceInfo(t *testing.T) {
	tp := trace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("test-tracer")

	logger, observedLogs := newObservedLogger(zap.InfoLevel)

	ctx, span := tracer.Start(context.Background(), "test-span")
	defer span.End()

	logger.Info(ctx, "test message", nil)

	entries := observedLogs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "test message", entries[0].Message)

	fields := entries[0].ContextMap()
	spanContext := span.SpanContext()
	assert.Equal(t, spanContext.TraceID().String(), fields["trace_id"])
	assert.Equal(t, spanContext.SpanID().String(), fields["span_id"])
}

func TestLogWithContextNoSpan(t *testing.T) {
	logger, observedLogs := newObservedLogger(zap.InfoLevel)

	logger.Info(context.Background(), "test message", nil)

	entries := observedLogs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotContains(t, fields, "trace_id")
	assert.NotContains(t, fields, "span_id")
}

func TestLoggerError_DoesNotMutateCallerFields(t *testing.T) {
	logger, observedLogs := newObservedLogger(zap.InfoLevel)

	fields := map[string]interface{}{"verb": "go"}
	logger.Error(context.Background(), "write failed", errors.New("disk full"), fields)

	assert.Equal(t, map[string]interface{}{"verb": "go"}, fields)
	entries := observedLogs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
	assert.Equal(t, "go", entries[0].ContextMap()["verb"])
}

func TestLoggerMergesMultipleFieldMaps(t *testing.T) {
	logger, observedLogs := newObservedLogger(zap.DebugLevel)

	logger.Debug(context.Background(), "resolved", map[string]interface{}{"verb": "go"}, nil, map[string]interface{}{"past": "went"})

	entries := observedLogs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "go", fields["verb"])
	assert.Equal(t, "went", fields["past"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	logger, observedLogs := newObservedLogger(zap.WarnLevel)

	logger.Info(context.Background(), "hidden")
	logger.Warn(context.Background(), "shown")

	entries := observedLogs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0].Message)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zap.InfoLevel, ParseLevel(""))
	assert.Equal(t, zap.InfoLevel, ParseLevel("verbose"))
}

func TestNewLogger_DisabledIsNop(t *testing.T) {
	logger := NewLogger(&config.OpenTelemetryConfig{EnableLogging: false})
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
	assert.NoError(t, logger.Shutdown(context.Background()))

	assert.NotNil(t, NewLogger(nil))
}
