package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// NewGormLogger routes gorm's own output (SQL errors, slow queries) through
// zap. Lookups that find nothing are reported to callers as ErrNotFound and
// are not logged.
func NewGormLogger(logs *zap.SugaredLogger, level logger.LogLevel) logger.Interface {
	return logger.New(gormWriter{logs: logs.With("component", "gorm")}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type gormWriter struct {
	logs *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logs.Warnf(format, args...)
}
