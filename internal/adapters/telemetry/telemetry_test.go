package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/requiregen/internal/adapters/telemetry"
	"go.trai.ch/requiregen/internal/core/domain"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracerWithProvider(tp, "test")
}

func TestOTelTracer_StartAndEnd(t *testing.T) {
	sr, tracer := newRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "generate")
	_, child := tracer.Start(ctx, "load")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "load", spans[0].Name())
	assert.Equal(t, "generate", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "read")
	span.RecordError(errors.New("no such file"))
	span.RecordError(nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "no such file", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "generate")
	span.SetAttribute("path", "after.json")
	span.SetAttribute("changes", 3)
	span.SetAttribute("bytes", int64(42))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("executable", true)
	span.SetAttribute("args", []string{"--no-update"})
	span.SetAttribute("scope", domain.ScopeDev)
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "after.json", attrs["path"].AsString())
	assert.Equal(t, int64(3), attrs["changes"].AsInt64())
	assert.Equal(t, int64(42), attrs["bytes"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0)
	assert.True(t, attrs["executable"].AsBool())
	assert.Equal(t, []string{"--no-update"}, attrs["args"].AsStringSlice())
	assert.Equal(t, "dev", attrs["scope"].AsString())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}
