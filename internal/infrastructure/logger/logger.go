package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Config selects how log lines are rendered and where they go.
// Zero values fall back to info-level console output on stdout.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // console or json
	Output     string // stdout, stderr, or a file path
	TimeFormat string // time.Layout string for timestamps
}

// New builds the application logger. Console format is meant for a
// terminal, json for log aggregation.
func New(cfg *Config) (*zap.Logger, error) {
	layout := cfg.TimeFormat
	if layout == "" {
		layout = defaultTimeLayout
	}

	core := zapcore.NewCore(
		newEncoder(cfg.Format, layout),
		openSink(cfg.Output),
		zapLevel(cfg.Level),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func zapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func newEncoder(format, timeLayout string) zapcore.Encoder {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	enc.EncodeDuration = zapcore.MillisDurationEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(enc)
	}

	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(enc)
}

func openSink(output string) zapcore.WriteSyncer {
	switch strings.ToLower(output) {
	case "", "stdout":
		return zapcore.AddSync(os.Stdout)
	case "stderr":
		return zapcore.AddSync(os.Stderr)
	}

	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// An unwritable log file must not take the process down.
		return zapcore.AddSync(os.Stdout)
	}
	return zapcore.AddSync(file)
}

// Named returns a child logger tagged with a component name.
func Named(log *zap.Logger, name string) *zap.Logger {
	return log.Named(name)
}

// Sync flushes buffered entries. Call it before the process exits.
func Sync(log *zap.Logger) error {
	return log.Sync()
}
