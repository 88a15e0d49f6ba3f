package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/requiregen/internal/core/ports"
)

// Setup registers a global tracer provider that reports spans through logger.
// Tracers created earlier with NewOTelTracer pick up the provider automatically.
// The caller shuts the provider down when the run ends.
func Setup(logger ports.Logger) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp
}
