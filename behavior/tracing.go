package behavior

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope name for mediator tracing.
const tracerName = "github.com/TristanKalmbach/MediatorNet"

// Tracing returns a behavior that wraps dispatch in an OpenTelemetry span.
// If no TracerProvider is configured globally, the default noop tracer is
// used and this behavior becomes a pass-through with zero overhead.
//
// Span attributes include mediator.request_type. On error, the span status
// is set to codes.Error with the error message.
func Tracing() Behavior {
	tracer := otel.Tracer(tracerName)
	return TracingWithTracer(tracer)
}

// TracingWithTracer returns tracing behavior using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing or
// when multiple providers are in use.
func TracingWithTracer(tracer trace.Tracer) Behavior {
	return func(ctx context.Context, req any, next Next) (any, error) {
		ctx, span := tracer.Start(ctx, "mediator.send",
			trace.WithAttributes(
				attribute.String("mediator.request_type", requestName(req)),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		out, err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return out, err
	}
}
