package log

import (
	"context"
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
}

type logger struct {
	zap *otelzap.Logger
}

var global Logger = &logger{zap: otelzap.New(zap.NewNop())}

// SetupLogger builds the process logger. LOG_LEVEL selects the level and
// APP_ENV=development switches to the console encoder.
func SetupLogger() *otelzap.Logger {
	level := zapcore.InfoLevel
	if lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = lvl
	}

	cfg := zap.NewProductionConfig()
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewExample()
	}

	return otelzap.New(z, otelzap.WithMinLevel(level))
}

// Setup returns a quiet logger for tests and tooling.
func Setup() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}

func Init(l *otelzap.Logger) {
	global = &logger{zap: l}
}

func GetLogger() Logger {
	return global
}

// Wrap adapts an otelzap logger to Logger without touching the global one.
func Wrap(l *otelzap.Logger) Logger {
	return &logger{zap: l}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Debug(msg, toFields(fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Info(msg, toFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Warn(msg, toFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Ctx(ctx).Error(msg, toFields(fields)...)
}

func toFields(args []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			fields = append(fields, v)
		case error:
			fields = append(fields, zap.Error(v))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}
