// Package otel traces and measures store dispatches with OpenTelemetry.
package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-drift/driftstore/pkg/store"
)

const (
	instrumentationName = "github.com/go-drift/driftstore"
)

// Observer implements store.Observer using OpenTelemetry
type Observer struct {
	tracer trace.Tracer
	meter  metric.Meter

	dispatchCounter  metric.Int64Counter
	dispatchDuration metric.Float64Histogram
	dispatchErrors   metric.Int64Counter
	renameCounter    metric.Int64Counter
}

// Option configures the Observer
type Option func(*Observer)

// WithTracerProvider sets a custom tracer provider
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *Observer) {
		o.tracer = provider.Tracer(instrumentationName)
	}
}

// WithMeterProvider sets a custom meter provider
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *Observer) {
		o.meter = provider.Meter(instrumentationName)
	}
}

// New creates an observer backed by the global providers unless options
// replace them.
func New(opts ...Option) (*Observer, error) {
	obs := &Observer{
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
	}

	for _, opt := range opts {
		opt(obs)
	}

	var err error

	obs.dispatchCounter, err = obs.meter.Int64Counter(
		"store.dispatch.count",
		metric.WithDescription("Number of actions dispatched to a reducer"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return nil, err
	}

	obs.dispatchDuration, err = obs.meter.Float64Histogram(
		"store.dispatch.duration",
		metric.WithDescription("Reducer execution duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	obs.dispatchErrors, err = obs.meter.Int64Counter(
		"store.dispatch.errors",
		metric.WithDescription("Number of reducer faults"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	obs.renameCounter, err = obs.meter.Int64Counter(
		"store.rename.count",
		metric.WithDescription("Number of store renames"),
		metric.WithUnit("{rename}"),
	)
	if err != nil {
		return nil, err
	}

	return obs, nil
}

// OnDispatchStart starts a span for the dispatch.
func (o *Observer) OnDispatchStart(ctx context.Context, name, actionType string) context.Context {
	attrs := dispatchAttributes(name, actionType)
	ctx, _ = o.tracer.Start(ctx, "store.dispatch: "+actionType, trace.WithAttributes(attrs...))
	o.dispatchCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	return ctx
}

// OnDispatchComplete records the duration and ends the span.
func (o *Observer) OnDispatchComplete(ctx context.Context, name, actionType string, duration time.Duration, err error) {
	span := trace.SpanFromContext(ctx)
	attrs := metric.WithAttributes(dispatchAttributes(name, actionType)...)

	o.dispatchDuration.Record(ctx, float64(duration)/float64(time.Millisecond), attrs)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		o.dispatchErrors.Add(ctx, 1, attrs)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}

// OnRename adds a rename event to the active span, if any, and counts it.
func (o *Observer) OnRename(ctx context.Context, oldName, newName string) {
	trace.SpanFromContext(ctx).AddEvent("store.rename", trace.WithAttributes(
		attribute.String("store.previous_name", oldName),
		attribute.String("store.name", newName),
	))
	o.renameCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("store.name", newName)))
}

func dispatchAttributes(name, actionType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("store.name", name),
		attribute.String("action.type", actionType),
	}
}

// Ensure Observer implements store.Observer
var _ store.Observer = (*Observer)(nil)
