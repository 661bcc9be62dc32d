// Package telemetry exposes the OpenTelemetry instruments shared by the services.
// Exporters are wired by the process through the global providers.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "inkwell"

// NewTracer returns the tracer used by the use cases.
func NewTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// NewMeter returns the meter used by the use cases.
func NewMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// StoreMetrics records query counts and latency of a persistence driver.
type StoreMetrics struct {
	system   string
	tracer   trace.Tracer
	count    metric.Int64Counter
	duration metric.Float64Histogram
	errors   metric.Int64Counter
}

// NewStoreMetrics creates the instruments for system (e.g. "sqlite").
func NewStoreMetrics(system string, tracer trace.Tracer, meter metric.Meter) *StoreMetrics {
	count, _ := meter.Int64Counter("inkwell.store.query.count",
		metric.WithDescription("Total number of store queries executed"),
		metric.WithUnit("{query}"),
	)
	duration, _ := meter.Float64Histogram("inkwell.store.query.duration",
		metric.WithDescription("Store query duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500),
	)
	queryErrors, _ := meter.Int64Counter("inkwell.store.query.errors",
		metric.WithDescription("Total number of store query errors"),
		metric.WithUnit("{error}"),
	)

	return &StoreMetrics{
		system:   system,
		tracer:   tracer,
		count:    count,
		duration: duration,
		errors:   queryErrors,
	}
}

// Observe starts a span for operation and returns a finisher recording the result.
// A nil receiver is a no-op.
func (m *StoreMetrics) Observe(ctx context.Context, operation string) (context.Context, func(error)) {
	if m == nil {
		return ctx, func(error) {}
	}

	start := time.Now()
	ctx, span := m.tracer.Start(ctx, "store."+operation, trace.WithSpanKind(trace.SpanKindClient))

	return ctx, func(err error) {
		attrs := metric.WithAttributes(
			attribute.String("db.operation", operation),
			attribute.String("db.system", m.system),
		)

		if m.count != nil {
			m.count.Add(ctx, 1, attrs)
		}
		if m.duration != nil {
			m.duration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
		}
		if err != nil {
			if m.errors != nil {
				m.errors.Add(ctx, 1, attrs)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
