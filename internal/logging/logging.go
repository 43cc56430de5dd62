// Package logging builds the zap loggers shared by both tiers.
package logging

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) *zap.Logger {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(Level(level)),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    encoderConfig(time.UTC),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zap.Must(cfg.Build())
}

// NewWithWriter returns a JSON logger writing every entry to w, with
// timestamps rendered in loc.
func NewWithWriter(w io.Writer, loc *time.Location) *zap.Logger {
	if loc == nil {
		loc = time.UTC
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig(loc)),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// Level maps a LOG_LEVEL value to a zap level.
func Level(level string) zapcore.Level {
	switch level {
	case "error":
		return zap.ErrorLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "debug":
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

func encoderConfig(loc *time.Location) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format(time.RFC3339Nano))
	}
	return cfg
}
