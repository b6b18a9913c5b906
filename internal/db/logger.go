package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// zapWriter routes gorm's printf style output into the application logger.
type zapWriter struct {
	logs *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...any) {
	w.logs.Debugf(format, args...)
}

// NewGormLogger returns a gorm logger backed by logs. A nil logs silences gorm.
func NewGormLogger(logs *zap.SugaredLogger, level logger.LogLevel) logger.Interface {
	if logs == nil {
		return logger.Discard
	}

	return logger.New(zapWriter{logs: logs.Named("gorm")}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
