package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "wordacy"

var globalTracer trace.Tracer

// InitGlobalTracer initializes the global tracer for the tooling.
func InitGlobalTracer() {
	globalTracer = otel.Tracer(tracerName)
}

// GetGlobalTracer returns the global tracer instance.
func GetGlobalTracer() trace.Tracer {
	if globalTracer == nil {
		// Fallback to default tracer if not initialized
		globalTracer = otel.Tracer(tracerName)
	}
	return globalTracer
}

// TraceFunction starts a new span with a descriptive name for the given component and function.
func TraceFunction(ctx context.Context, component, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := GetGlobalTracer()
	spanName := fmt.Sprintf("%s.%s", component, functionName)
	return tracer.Start(ctx, spanName, trace.WithAttributes(attributes...))
}

// TraceDatasetFunction starts a new span for a dataset synthesis function.
func TraceDatasetFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "dataset", functionName, attributes...)
}

// TraceInflectFunction starts a new span for a verb inflection function.
func TraceInflectFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "inflect", functionName, attributes...)
}

// TraceVocabularyFunction starts a new span for a vocabulary loading function.
func TraceVocabularyFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "vocabulary", functionName, attributes...)
}

// TraceTokensFunction starts a new span for a token counting function.
func TraceTokensFunction(ctx context.Context, functionName string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return TraceFunction(ctx, "tokens", functionName, attributes...)
}

// AttributeVerb returns a tracing attribute for a base verb.
func AttributeVerb(verb string) attribute.KeyValue {
	return attribute.String("verb", verb)
}

// AttributeVocabularySet returns a tracing attribute for a vocabulary set name.
func AttributeVocabularySet(name string) attribute.KeyValue {
	return attribute.String("vocabulary.set", name)
}

// AttributeCatalogVersion returns a tracing attribute for a template catalog version.
func AttributeCatalogVersion(version string) attribute.KeyValue {
	return attribute.String("catalog.version", version)
}

// AttributeRecordCount returns a tracing attribute for a number of records.
func AttributeRecordCount(n int) attribute.KeyValue {
	return attribute.Int("record.count", n)
}

// AttributeVerbCount returns a tracing attribute for a number of verbs.
func AttributeVerbCount(n int) attribute.KeyValue {
	return attribute.Int("verb.count", n)
}

// AttributeTokenizer returns a tracing attribute for a tokenizer encoding.
func AttributeTokenizer(encoding string) attribute.KeyValue {
	return attribute.String("tokenizer.encoding", encoding)
}
