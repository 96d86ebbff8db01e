// Package log is the logging surface of safe-int: a small Logger interface,
// severity levels and typed fields.
//
// Two implementations live here, NewNop and Plain. The zap package provides
// the structured one used in production.
package log
