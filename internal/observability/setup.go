package observability

import (
	"context"
	"os"

	"wordacy/internal/config"
	contextutils "wordacy/internal/utils"

	autosdk "go.opentelemetry.io/auto/sdk"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/trace"
)

// Providers bundles what SetupObservability started so a command can flush it on exit
type Providers struct {
	Tracer trace.TracerProvider
	Meter  *metric.MeterProvider
	Logger *Logger
}

// SetupObservability initializes tracing, metrics, and logging for a command run
func SetupObservability(cfg *config.OpenTelemetryConfig, serviceName string, logLevel string) (result0 *Providers, err error) {
	if serviceName != "" {
		cfg.ServiceName = serviceName
	}

	if err := os.Setenv("OTEL_SERVICE_NAME", cfg.ServiceName); err != nil {
		return nil, err
	}
	if err := os.Setenv("OTEL_SERVICE_VERSION", cfg.ServiceVersion); err != nil {
		return nil, err
	}

	p := &Providers{Logger: NewLoggerWithLevel(cfg, ParseLevel(logLevel))}
	p.Logger.Debug(context.Background(), "Observability configured", map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"protocol": cfg.Protocol,
		"headers":  contextutils.MaskHeaders(cfg.Headers),
		"tracing":  cfg.EnableTracing,
		"metrics":  cfg.EnableMetrics,
		"logging":  cfg.EnableLogging,
	})

	if cfg.EnableTracing {
		if cfg.UseAutoSDK {
			p.Tracer = autosdk.TracerProvider()
			p.Logger.Debug(context.Background(), "Tracing enabled with Auto SDK", map[string]interface{}{"service_name": cfg.ServiceName})
		} else {
			p.Tracer, err = InitStandardTracing(cfg)
			if err != nil {
				return nil, contextutils.WrapError(err, "failed to initialize tracing")
			}
			p.Logger.Debug(context.Background(), "Tracing enabled with standard SDK", map[string]interface{}{"service_name": cfg.ServiceName})
		}
		otel.SetTracerProvider(p.Tracer)
		InitTracing(cfg)
		InitGlobalTracer()
	}

	if cfg.EnableMetrics {
		p.Meter, err = InitMetrics(cfg)
		if err != nil {
			return nil, contextutils.WrapError(err, "failed to initialize metrics")
		}
		otel.SetMeterProvider(p.Meter)
	}

	return p, nil
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Shutdown flushes and stops every provider that was started
func (p *Providers) Shutdown(ctx context.Context) {
	if p == nil {
		return
	}
	if s, ok := p.Tracer.(shutdowner); ok {
		if err := s.Shutdown(ctx); err != nil {
			p.Logger.Warn(ctx, "Error shutting down tracer provider", map[string]interface{}{"error": err.Error(), "provider": "tracer"})
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			p.Logger.Warn(ctx, "Error shutting down meter provider", map[string]interface{}{"error": err.Error(), "provider": "meter"})
		}
	}
	if err := p.Logger.Shutdown(ctx); err != nil {
		p.Logger.Warn(ctx, "Error shutting down logger provider", map[string]interface{}{"error": err.Error(), "provider": "logger"})
	}
	_ = p.Logger.Sync()
}
