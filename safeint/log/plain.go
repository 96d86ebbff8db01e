package log

import (
	"context"
	"fmt"
	stdlog "log"
	"strings"
)

// controlChars are escaped in every rendered string. Expressions come from
// user input and must not be able to forge extra log lines (CWE-117).
var controlChars = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// Plain writes single-line `[level] msg key=value ...` entries through a
// standard library *log.Logger. It backs safecalc's plain log format.
type Plain struct {
	out    *stdlog.Logger
	level  Level
	prefix string
	fields []Field
}

var _ Logger = (*Plain)(nil)

// NewPlain returns a Plain logger writing to out. A nil out means the
// standard library's default logger.
func NewPlain(out *stdlog.Logger, level Level) *Plain {
	if out == nil {
		out = stdlog.Default()
	}

	return &Plain{out: out, level: level}
}

func (p *Plain) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !p.Enabled(level) {
		return
	}

	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", level, controlChars.Replace(msg))

	for _, f := range p.fields {
		writeField(&b, f.Key, f.Value)
	}

	for _, f := range fields {
		writeField(&b, p.prefix+f.Key, f.Value)
	}

	p.out.Print(b.String())
}

func writeField(b *strings.Builder, key string, value any) {
	b.WriteByte(' ')
	b.WriteString(controlChars.Replace(key))
	b.WriteByte('=')
	b.WriteString(controlChars.Replace(fmt.Sprint(value)))
}

// With returns a child carrying fields, keyed under the current group.
//
//nolint:ireturn
func (p *Plain) With(fields ...Field) Logger {
	child := *p
	child.fields = make([]Field, 0, len(p.fields)+len(fields))
	child.fields = append(child.fields, p.fields...)

	for _, f := range fields {
		child.fields = append(child.fields, Field{Key: p.prefix + f.Key, Value: f.Value})
	}

	return &child
}

// WithGroup returns a child whose later field keys are prefixed "name.".
//
//nolint:ireturn
func (p *Plain) WithGroup(name string) Logger {
	child := *p
	child.prefix = p.prefix + name + "."

	return &child
}

func (p *Plain) Enabled(level Level) bool {
	return p != nil && level <= p.level
}

// Sync is a no-op: *log.Logger does not buffer.
func (p *Plain) Sync(context.Context) error { return nil }
