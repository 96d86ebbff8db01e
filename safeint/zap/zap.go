package zap

import (
	"context"

	"github.com/cobalamin/safe-int/safeint/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements log.Logger on a *zap.Logger. A nil *Logger discards
// everything.
type Logger struct {
	base  *zap.Logger
	level zap.AtomicLevel
}

var _ log.Logger = (*Logger)(nil)

// Wrap adapts base, which keeps its own level.
func Wrap(base *zap.Logger) *Logger {
	return &Logger{base: base, level: zap.NewAtomicLevelAt(base.Level())}
}

func (l *Logger) logger() *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}

	return l.base
}

// Log writes one entry. When ctx carries a valid span context the entry gets
// trace_id and span_id.
func (l *Logger) Log(ctx context.Context, level log.Level, msg string, fields ...log.Field) {
	ce := l.logger().Check(zapLevel(level), msg)
	if ce == nil {
		return
	}

	out := toZapFields(fields)

	if ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			out = append(out,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	ce.Write(out...)
}

//nolint:ireturn
func (l *Logger) With(fields ...log.Field) log.Logger {
	return &Logger{base: l.logger().With(toZapFields(fields)...), level: l.Level()}
}

// WithGroup nests later fields under the JSON object name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) log.Logger {
	return &Logger{base: l.logger().With(zap.Namespace(name)), level: l.Level()}
}

func (l *Logger) Enabled(level log.Level) bool {
	return l.logger().Core().Enabled(zapLevel(level))
}

// Sync flushes buffered entries unless ctx is already done.
func (l *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return l.logger().Sync()
}

// Level returns the handle that changes this logger's level at runtime.
func (l *Logger) Level() zap.AtomicLevel {
	if l == nil {
		return zap.NewAtomicLevel()
	}

	return l.level
}

var zapLevels = [...]zapcore.Level{
	log.LevelError: zapcore.ErrorLevel,
	log.LevelWarn:  zapcore.WarnLevel,
	log.LevelInfo:  zapcore.InfoLevel,
	log.LevelDebug: zapcore.DebugLevel,
}

// zapLevel maps unknown levels to info.
func zapLevel(level log.Level) zapcore.Level {
	if int(level) < len(zapLevels) {
		return zapLevels[level]
	}

	return zapcore.InfoLevel
}

func toZapFields(fields []log.Field) []zap.Field {
	out := make([]zap.Field, len(fields))

	for i, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out[i] = zap.String(f.Key, v)
		case int:
			out[i] = zap.Int(f.Key, v)
		case []int:
			out[i] = zap.Ints(f.Key, v)
		case bool:
			out[i] = zap.Bool(f.Key, v)
		case error:
			out[i] = zap.NamedError(f.Key, v)
		default:
			out[i] = zap.Any(f.Key, v)
		}
	}

	return out
}
