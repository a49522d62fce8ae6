package behavior

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name for mediator metrics.
const meterName = "github.com/TristanKalmbach/MediatorNet"

// Metrics returns a behavior that records per-request metrics using the
// global OTel MeterProvider. If no MeterProvider is configured, noop
// instruments are used and this behavior becomes a pass-through.
//
// Instruments:
//   - mediator.request.duration (Float64Histogram): dispatch time in
//     seconds, with attributes: request_type, status ("ok" or "error")
//   - mediator.request.total (Int64Counter): total dispatches,
//     with attributes: request_type, status ("ok" or "error")
func Metrics() Behavior {
	meter := otel.Meter(meterName)
	return MetricsWithMeter(meter)
}

// MetricsWithMeter returns metrics behavior using the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func MetricsWithMeter(meter metric.Meter) Behavior {
	// Create instruments once at behavior construction time. OTel
	// instruments are safe for concurrent use. On error, the API returns
	// noop instruments so the behavior degrades gracefully.
	duration, dErr := meter.Float64Histogram(
		"mediator.request.duration",
		metric.WithDescription("Duration of request dispatch in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	total, tErr := meter.Int64Counter(
		"mediator.request.total",
		metric.WithDescription("Total number of dispatched requests"),
		metric.WithUnit("{request}"),
	)
	_ = tErr // noop fallback guaranteed by OTel API contract

	return func(ctx context.Context, req any, next Next) (any, error) {
		start := time.Now()
		out, err := next(ctx)
		elapsed := time.Since(start).Seconds()

		status := "ok"
		if err != nil {
			status = "error"
		}

		attrs := metric.WithAttributes(
			attribute.String("request_type", requestName(req)),
			attribute.String("status", status),
		)

		duration.Record(ctx, elapsed, attrs)
		total.Add(ctx, 1, attrs)

		return out, err
	}
}
