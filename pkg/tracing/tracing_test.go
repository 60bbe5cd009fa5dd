package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupRecorder 安装一个内存Span记录器作为全局Provider
func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(previous)
	})

	return recorder
}

func TestStartSpan(t *testing.T) {
	recorder := setupRecorder(t)

	t.Run("子Span继承TraceID", func(t *testing.T) {
		ctx, root := StartSpan(context.Background(), "bookrec/test", "BookPage")
		rootTraceID := ExtractTraceID(ctx)
		rootSpanID := ExtractSpanID(ctx)

		childCtx, child := StartSpan(ctx, "bookrec/test", "mysql.BookDetail")

		assert.Len(t, rootTraceID, 32)
		assert.Len(t, rootSpanID, 16)
		assert.Equal(t, rootTraceID, ExtractTraceID(childCtx))
		assert.NotEqual(t, rootSpanID, ExtractSpanID(childCtx))

		child.End()
		root.End()
	})

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "mysql.BookDetail", ended[0].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestRecordError(t *testing.T) {
	recorder := setupRecorder(t)

	_, span := StartSpan(context.Background(), "bookrec/test", "mysql.BookLabels")
	RecordError(span, nil)
	RecordError(span, errors.New("connection reset"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "connection reset", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
}

func TestExtractIDs_NoSpan(t *testing.T) {
	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Contains(t, sampler(0.5).Description(), "TraceIDRatioBased")
}
