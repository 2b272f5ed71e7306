package apm

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return exporter
}

func TestTracerStartSpanFromContext(t *testing.T) {
	exporter := setupRecorder(t)

	tracer := NewTracer("test-tracer")
	ctx, span := tracer.StartSpanFromContext(context.Background(), "read_state")
	if !span.IsRecording() {
		t.Fatal("span not recording")
	}
	span.SetAttribute(attribute.String("pool", "0xabc"))
	span.SetAttributes(attribute.Int("calls", 2), attribute.Bool("cached", false))

	got := tracer.SpanFromContext(ctx)
	if got.SpanContext().SpanID() != span.SpanContext().SpanID() {
		t.Error("SpanFromContext returned a different span")
	}

	span.SetStatus(codes.Ok, "done")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}
	if spans[0].Name != "read_state" {
		t.Errorf("span name = %q", spans[0].Name)
	}
	if spans[0].Status.Code != codes.Ok {
		t.Errorf("status = %v, want Ok", spans[0].Status.Code)
	}
	if len(spans[0].Attributes) != 3 {
		t.Errorf("got %d attributes, want 3", len(spans[0].Attributes))
	}
}

func TestSpanNoticeError(t *testing.T) {
	exporter := setupRecorder(t)

	tracer := NewTracer("test-tracer")
	_, span := tracer.StartSpanFromContext(context.Background(), "read_state")
	span.NoticeError(errors.New("contract read failed"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("exported %d spans, want 1", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("status = %v, want Error", spans[0].Status.Code)
	}
	if len(spans[0].Events) == 0 {
		t.Error("error not recorded as event")
	}
}

func TestTracerGetTracer(t *testing.T) {
	setupRecorder(t)

	tracer := NewTracer("test-tracer")
	if tracer.GetTracer() == nil {
		t.Fatal("underlying tracer is nil")
	}
}
