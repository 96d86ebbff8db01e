package zap

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cobalamin/safe-int/safeint/log"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment selects the default level and zap development mode.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

var (
	// ErrUnknownEnvironment is returned for an Environment outside the four
	// profiles.
	ErrUnknownEnvironment = errors.New("unknown environment")
	// ErrMissingLibraryName is returned by New when Config.OTelLibraryName is
	// empty.
	ErrMissingLibraryName = errors.New("OTelLibraryName is required")
)

// ParseEnvironment accepts the four profile names, case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(s)))

	switch env {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return env, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownEnvironment, s)
	}
}

func (env Environment) development() bool {
	return env == EnvironmentDevelopment || env == EnvironmentLocal
}

// Config holds the inputs of New.
type Config struct {
	Environment Environment
	// Level is parsed with log.ParseLevel. Empty means debug for development
	// and local, info otherwise.
	Level string
	// OTelLibraryName scopes entries forwarded to the OpenTelemetry bridge.
	OTelLibraryName string
}

// New returns a logger writing JSON lines to w, teed into the otelzap bridge.
func New(w io.Writer, cfg Config) (*Logger, error) {
	if cfg.OTelLibraryName == "" {
		return nil, ErrMissingLibraryName
	}

	env, err := ParseEnvironment(string(cfg.Environment))
	if err != nil {
		return nil, err
	}

	level, err := resolveLevel(env, cfg.Level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(w), level),
		otelzap.NewCore(cfg.OTelLibraryName),
	)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if env.development() {
		opts = append(opts, zap.Development())
	}

	return &Logger{base: zap.New(core, opts...), level: level}, nil
}

func resolveLevel(env Environment, s string) (zap.AtomicLevel, error) {
	if strings.TrimSpace(s) == "" {
		if env.development() {
			return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
		}

		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	level, err := log.ParseLevel(s)
	if err != nil {
		return zap.AtomicLevel{}, err
	}

	return zap.NewAtomicLevelAt(zapLevel(level)), nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg
}
