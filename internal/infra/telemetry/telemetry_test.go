package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestStoreMetrics_Observe(t *testing.T) {
	m := NewStoreMetrics("sqlite", tracenoop.NewTracerProvider().Tracer("test"), metricnoop.NewMeterProvider().Meter("test"))

	ctx, done := m.Observe(context.Background(), "posts.find")
	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() { done(errors.New("boom")) })
}

func TestStoreMetrics_NilIsNoop(t *testing.T) {
	var m *StoreMetrics

	ctx := context.Background()
	got, done := m.Observe(ctx, "posts.find")

	assert.Equal(t, ctx, got)
	assert.NotPanics(t, func() { done(nil) })
}

func TestGlobalInstruments(t *testing.T) {
	assert.NotNil(t, NewTracer())
	assert.NotNil(t, NewMeter())
}
