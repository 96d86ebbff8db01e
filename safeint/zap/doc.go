// Package zap implements safeint/log.Logger with go.uber.org/zap.
//
// New builds a JSON logger for an environment profile and tees it into the
// OpenTelemetry log bridge (otelzap). Entries logged with a span in the
// context carry trace_id and span_id.
package zap
