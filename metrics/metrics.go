// Package metrics exposes the detected process runtime as an info metric,
// for backends that join metric series on attributes rather than on
// resources.
package metrics

import (
	"context"
	"fmt"

	processruntime "github.com/last9/go-processruntime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/last9/go-processruntime/metrics"

	// RuntimeInfoName is the name of the runtime info gauge.
	RuntimeInfoName = "process.runtime.info"
)

// RuntimeInfo is an observable gauge that always reports 1, carrying the
// process.runtime.* attributes of a Description.
type RuntimeInfo struct {
	gauge        metric.Int64ObservableGauge
	registration metric.Registration
}

// NewRuntimeInfo registers the runtime info gauge on mp. A nil mp uses the
// global MeterProvider.
//
// Example:
//
//	desc := processruntime.New().Describe()
//	info, err := metrics.NewRuntimeInfo(nil, desc)
//	if err != nil {
//	    log.Printf("Failed to register runtime info: %v", err)
//	    return err
//	}
//	defer info.Close()
func NewRuntimeInfo(mp metric.MeterProvider, desc processruntime.Description) (*RuntimeInfo, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(meterName)
	gauge, err := meter.Int64ObservableGauge(
		RuntimeInfoName,
		metric.WithDescription("Runtime the process executes under"),
		metric.WithUnit("{runtime}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge %s: %w", RuntimeInfoName, err)
	}

	attrs := metric.WithAttributes(desc.Attributes()...)
	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(gauge, 1, attrs)
		return nil
	}, gauge)
	if err != nil {
		return nil, fmt.Errorf("failed to register callback for %s: %w", RuntimeInfoName, err)
	}

	return &RuntimeInfo{gauge: gauge, registration: registration}, nil
}

// Close stops reporting the gauge.
func (r *RuntimeInfo) Close() error {
	if r.registration == nil {
		return nil
	}
	return r.registration.Unregister()
}
