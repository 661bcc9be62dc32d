package pubsub

import (
	"context"
	"log/slog"

	"inkwell/config"
	"inkwell/internal/domain/constants"
	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

// noopPublisher drops events when no bus is configured. The post worker
// simply never hears about lifecycle changes.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, event *service.Event) error {
	p.logger.Debug("[NoopPubSub] Dropping event",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// instrumentedPublisher records a span and a counter per published event.
type instrumentedPublisher struct {
	next      service.EventPublisher
	provider  string
	tracer    trace.Tracer
	published metric.Int64Counter
}

func (p *instrumentedPublisher) Publish(ctx context.Context, event *service.Event) error {
	ctx, span := p.tracer.Start(ctx, "pubsub.publish", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", p.provider),
		attribute.String("inkwell.event.type", event.Type),
	}
	span.SetAttributes(append(attrs, attribute.String("messaging.message.id", event.ID))...)

	err := p.next.Publish(ctx, event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	p.published.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.Bool("error", err != nil))...))

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Tracer trace.Tracer `optional:"true"`
	Meter  metric.Meter `optional:"true"`
}

// NewEventPublisher builds the event bus selected by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, lifecycle events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return instrument(publisher, cfg.Provider, params.Tracer, params.Meter), nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

func instrument(publisher service.EventPublisher, provider string, tracer trace.Tracer, meter metric.Meter) service.EventPublisher {
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer("")
	}
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter("")
	}
	published, _ := meter.Int64Counter("inkwell.events.published",
		metric.WithDescription("Lifecycle events handed to the event bus"),
		metric.WithUnit("{event}"),
	)

	return &instrumentedPublisher{
		next:      publisher,
		provider:  provider,
		tracer:    tracer,
		published: published,
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
