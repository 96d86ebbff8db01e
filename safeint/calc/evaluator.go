package calc

import (
	"context"
	"errors"
	"fmt"

	"github.com/cobalamin/safe-int/safeint"
	"github.com/cobalamin/safe-int/safeint/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// instrumentationName scopes the meter and tracer obtained by the Evaluator.
const instrumentationName = "github.com/cobalamin/safe-int/safeint/calc"

// MetricEvaluations counts Evaluate calls by outcome.
const MetricEvaluations = "safeint.calc.evaluations"

// Outcome values recorded on the evaluations counter and on spans.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// ErrNilMeter indicates that WithMeter was given a nil meter.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Result is the outcome of one Evaluate call.
type Result struct {
	Expression string
	Value      safeint.SafeInt
	// Cause is nil when Value is valid, otherwise a *StepError.
	Cause error
}

// Evaluator evaluates expressions and reports on invalid results. It holds
// only immutable configuration and is safe for concurrent use.
type Evaluator struct {
	logger      log.Logger
	meter       metric.Meter
	tracer      trace.Tracer
	evaluations metric.Int64Counter
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger. Invalid results are logged at debug level and
// malformed expressions at warn level.
func WithLogger(logger log.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMeter sets the meter used to create the evaluations counter.
func WithMeter(meter metric.Meter) Option {
	return func(e *Evaluator) {
		e.meter = meter
	}
}

// WithTracerProvider sets where evaluation spans are sent.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Evaluator) {
		if tp != nil {
			e.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// New creates an Evaluator. Without options it logs nothing and records
// telemetry into no-op providers.
func New(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		logger: log.NewNop(),
		meter:  metricnoop.NewMeterProvider().Meter(instrumentationName),
		tracer: tracenoop.NewTracerProvider().Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.meter == nil {
		return nil, ErrNilMeter
	}

	counter, err := e.meter.Int64Counter(
		MetricEvaluations,
		metric.WithDescription("Measures the number of expressions evaluated, by outcome."),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricEvaluations, err)
	}

	e.evaluations = counter

	return e, nil
}

// Evaluate parses and evaluates expr with vars.
//
// The returned error is a *SyntaxError or wraps ErrUnknownVariable; in both
// cases Result.Value is Invalid. Arithmetic failures are not errors: they are
// reported through Result.Value and Result.Cause.
func (e *Evaluator) Evaluate(ctx context.Context, expr string, vars map[string]safeint.SafeInt) (Result, error) {
	ctx, span := e.tracer.Start(ctx, "calc.Evaluate", trace.WithAttributes(
		attribute.String("safeint.expression", expr),
	))
	defer span.End()

	res := Result{Expression: expr, Value: safeint.Invalid()}

	parsed, err := Parse(expr)
	if err != nil {
		e.recordError(ctx, span, "malformed expression", expr, err)
		return res, err
	}

	value, cause, err := parsed.evaluate(vars)
	if err != nil {
		e.recordError(ctx, span, "expression references unknown variable", expr, err)
		return res, err
	}

	res.Value = value

	if value.IsValid() {
		e.logger.Log(ctx, log.LevelDebug, "expression evaluated",
			log.String("expression", expr), log.Value("value", value))
		e.record(ctx, span, OutcomeValid, "")

		return res, nil
	}

	fields := []log.Field{log.String("expression", expr)}

	// Every path to an Invalid result records a step, but guard against
	// storing a typed nil in the error interface.
	if cause != nil {
		res.Cause = cause

		fields = append(fields,
			log.String("op", string(cause.Op)),
			log.Int("position", cause.Pos),
			log.Ints("operands", cause.Operands),
			log.Err(cause),
		)
	}

	why := reason(res.Cause)

	e.logger.Log(ctx, log.LevelDebug, "expression evaluated to invalid",
		append(fields, log.String("reason", why))...)

	e.record(ctx, span, OutcomeInvalid, why)

	return res, nil
}

func (e *Evaluator) recordError(ctx context.Context, span trace.Span, msg, expr string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	e.logger.Log(ctx, log.LevelWarn, msg, log.String("expression", expr), log.Err(err))
	e.evaluations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", OutcomeError)))
}

func (e *Evaluator) record(ctx context.Context, span trace.Span, outcome, why string) {
	attrs := []attribute.KeyValue{attribute.String("outcome", outcome)}
	if why != "" {
		attrs = append(attrs, attribute.String("reason", why))
	}

	span.SetAttributes(attribute.Bool("safeint.valid", outcome == OutcomeValid))
	if why != "" {
		span.SetAttributes(attribute.String("safeint.reason", why))
	}

	e.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
}
