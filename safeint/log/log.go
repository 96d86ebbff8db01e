package log

import (
	"context"
	"fmt"
	"strings"

	"github.com/cobalamin/safe-int/safeint"
)

// Logger receives diagnostic events from calc and safecalc. The core
// safeint package never logs.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is an event severity. Smaller is more severe, so a logger set to
// LevelWarn emits LevelError and LevelWarn only.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// ParseLevel accepts the names returned by Level.String, case-insensitively,
// and "warning" as an alias of "warn".
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}

	for level, n := range levelNames {
		if n == name {
			return Level(level), nil
		}
	}

	return LevelError, fmt.Errorf("unknown log level %q", s)
}

// Field is one key/value pair attached to an event.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Ints(key string, values []int) Field { return Field{Key: key, Value: values} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err attaches err under the key "error".
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Value attaches a SafeInt in its String form, so Invalid is logged as
// "Invalid" rather than as a zero.
func Value(key string, si safeint.SafeInt) Field {
	return Field{Key: key, Value: si.String()}
}
