package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds a named sugared logger writing JSON lines at the given
// level. Output defaults to stderr so it never interleaves with the menu on
// stdout.
func NewZapLogger(name string, level zapcore.Level, outputPaths ...string) (*zap.SugaredLogger, error) {
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = outputPaths
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return logger.Named(name).Sugar(), nil
}
