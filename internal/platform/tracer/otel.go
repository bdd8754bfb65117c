package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dErrors "kisan/pkg/domain-errors"
)

// InstrumentationName identifies spans emitted by this service.
const InstrumentationName = "kisan"

// AttrErrorCode carries the domain error code of a failed operation.
const AttrErrorCode = "error.code"

// OTelTracer emits spans through an OpenTelemetry tracer provider.
type OTelTracer struct {
	tracer trace.Tracer
}

type OTelOption func(*otelConfig)

type otelConfig struct {
	provider trace.TracerProvider
	version  string
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *otelConfig) {
		if tp != nil {
			c.provider = tp
		}
	}
}

// WithVersion tags spans with the service build version.
func WithVersion(v string) OTelOption {
	return func(c *otelConfig) {
		c.version = v
	}
}

func NewOTel(opts ...OTelOption) *OTelTracer {
	var cfg otelConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.provider == nil {
		cfg.provider = otel.GetTracerProvider()
	}
	var tracerOpts []trace.TracerOption
	if cfg.version != "" {
		tracerOpts = append(tracerOpts, trace.WithInstrumentationVersion(cfg.version))
	}
	return &OTelTracer{tracer: cfg.provider.Tracer(InstrumentationName, tracerOpts...)}
}

// Start opens an internal span. Service operations run inside the HTTP
// request span, so they are never roots of their own.
func (t *OTelTracer) Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(toOTelAttributes(attrs)...),
	)
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

// End tags the span with the domain error code of err. Only internal and
// unclassified failures mark the span as errored; rejected input, unknown
// processors and unsupported languages are normal outcomes.
func (s *otelSpan) End(err error) {
	if err != nil {
		code, ok := dErrors.CodeOf(err)
		if !ok {
			code = dErrors.CodeInternal
		}
		s.span.SetAttributes(attribute.String(AttrErrorCode, string(code)))
		if isServerFault(code) {
			s.span.RecordError(err)
			s.span.SetStatus(codes.Error, err.Error())
		}
	}
	s.span.End()
}

func isServerFault(code dErrors.Code) bool {
	switch code {
	case dErrors.CodeInternal, dErrors.CodeCatalogUnavailable, dErrors.CodeTimeout:
		return true
	}
	return false
}

func (s *otelSpan) SetAttributes(attrs ...Attribute) {
	s.span.SetAttributes(toOTelAttributes(attrs)...)
}

func (s *otelSpan) AddEvent(name string, attrs ...Attribute) {
	s.span.AddEvent(name, trace.WithAttributes(toOTelAttributes(attrs)...))
}

// toOTelAttributes converts facade attributes. Values of other types are
// formatted as strings so no attribute is silently lost.
func toOTelAttributes(attrs []Attribute) []attribute.KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	kv := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		key := attribute.Key(a.Key)
		switch v := a.Value.(type) {
		case string:
			kv = append(kv, key.String(v))
		case []string:
			kv = append(kv, key.StringSlice(v))
		case bool:
			kv = append(kv, key.Bool(v))
		case int:
			kv = append(kv, key.Int(v))
		case int64:
			kv = append(kv, key.Int64(v))
		case float64:
			kv = append(kv, key.Float64(v))
		case nil:
		default:
			kv = append(kv, key.String(fmt.Sprint(v)))
		}
	}
	return kv
}

var (
	_ Tracer = (*OTelTracer)(nil)
	_ Span   = (*otelSpan)(nil)
)
