// Package observability provides tracing for the panchang engine.
//
// The engine has no service boundary of its own (no gRPC/HTTP server):
// tracing exists so a caller embedding this module into a service can
// see span-level detail on individual astronomical computations. By
// default spans are exported to stdout; callers that run their own
// collector can point the OTLP exporter at it with NewObserver.
package observability

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	resource          *sdkresource.Resource
	initResourcesOnce sync.Once
	initObserverOnce  sync.Once
	oi                *observer
)

// Wrappers re-exporting the trace package so callers don't need a
// direct OpenTelemetry import for the common cases.
var WithAttributes = trace.WithAttributes
var SpanFromContext = trace.SpanFromContext

// ObserverInterface is the tracing surface the engine depends on.
type ObserverInterface interface {
	Shutdown(ctx context.Context) error
	Tracer(name string) trace.Tracer
	CreateSpan(ctx context.Context, name string) (context.Context, trace.Span)
}

type observer struct {
	tp *sdktrace.TracerProvider
}

// NewLocalObserver initializes a stdout-exporting tracer provider.
func NewLocalObserver() ObserverInterface {
	initObserverOnce.Do(func() {
		tp, _ := initStdoutProvider()
		oi = &observer{tp: tp}
	})
	return oi
}

// NewObserver initializes a tracer provider exporting to the OTLP/gRPC
// collector at address. An empty address falls back to stdout.
func NewObserver(address string) (ObserverInterface, error) {
	var tp *sdktrace.TracerProvider
	var err error
	initObserverOnce.Do(func() {
		if address == "" {
			tp, err = initStdoutProvider()
		} else {
			tp, err = initTracerProvider(address)
		}
		oi = &observer{tp: tp}
	})
	return oi, err
}

// Observer returns the process-wide observer, lazily defaulting to a
// local stdout observer so library callers never need to initialize one.
func Observer() ObserverInterface {
	if oi == nil {
		return NewLocalObserver()
	}
	return oi
}

func (o *observer) Shutdown(ctx context.Context) error {
	return o.tp.Shutdown(ctx)
}

func (o *observer) Tracer(name string) trace.Tracer {
	return o.tp.Tracer(name)
}

// CreateSpan starts a new span under the package's tracer.
func (o *observer) CreateSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("panchangam")
	return tracer.Start(ctx, name)
}

func initResource() *sdkresource.Resource {
	initResourcesOnce.Do(func() {
		extraResources, _ := sdkresource.New(
			context.Background(),
			sdkresource.WithOS(),
			sdkresource.WithProcess(),
			sdkresource.WithAttributes(
				attribute.String("service.name", "panchangam"),
				attribute.String("service.namespace", "observability"),
			),
		)
		resource, _ = sdkresource.Merge(sdkresource.Default(), extraResources)
	})
	return resource
}

func initStdoutProvider() (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("init stdouttrace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(initResource()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}

func initTracerProvider(address string) (*sdktrace.TracerProvider, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	exporter, err := otlptracegrpc.New(context.Background(), otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(initResource()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
