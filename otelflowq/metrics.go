// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otelflowq

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// MetricsPush adds count, duration, and error metrics to a push operation.
func MetricsPush[T any](metricName string, fn PushFunc[T]) PushFunc[T] {
	meter := otel.GetMeterProvider().Meter("otelflowq")
	pushCounter, _ := meter.Int64Counter(metricName + ".count")
	pushDuration, _ := meter.Float64Histogram(metricName + ".duration")
	errorCounter, _ := meter.Int64Counter(metricName + ".errors")

	return func(ctx context.Context, item T) error {
		startTime := time.Now()
		pushCounter.Add(ctx, 1)

		err := fn(ctx, item)

		pushDuration.Record(ctx, time.Since(startTime).Seconds())
		if err != nil {
			errorCounter.Add(ctx, 1)
		}
		return err
	}
}

// MetricsPop adds count, duration, and error metrics to a pop operation.
func MetricsPop[T any](metricName string, fn PopFunc[T]) PopFunc[T] {
	meter := otel.GetMeterProvider().Meter("otelflowq")
	popCounter, _ := meter.Int64Counter(metricName + ".count")
	popDuration, _ := meter.Float64Histogram(metricName + ".duration")
	errorCounter, _ := meter.Int64Counter(metricName + ".errors")

	return func(ctx context.Context) (T, error) {
		startTime := time.Now()
		popCounter.Add(ctx, 1)

		item, err := fn(ctx)

		popDuration.Record(ctx, time.Since(startTime).Seconds())
		if err != nil {
			errorCounter.Add(ctx, 1)
		}
		return item, err
	}
}

// AvailabilitySource is anything reporting the signed availability
// introspection value documented on [flowq.Unlimited.Available],
// [flowq.Limited.Available], and [flowq.Resizable.Available].
type AvailabilitySource interface {
	Available() int64
}

// ObserveAvailability registers an async gauge named metricName+".available"
// that reports source.Available() on every collection. The returned
// registration's Unregister method must be called to stop observing.
func ObserveAvailability(metricName string, source AvailabilitySource) (metric.Registration, error) {
	meter := otel.GetMeterProvider().Meter("otelflowq")
	gauge, err := meter.Int64ObservableGauge(metricName + ".available")
	if err != nil {
		return nil, err
	}
	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(gauge, source.Available())
		return nil
	}, gauge)
}
