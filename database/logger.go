// logger.go - Routes gorm's logging through zerolog

package database // Declares the package name

import ( // Import required packages
	"time" // Slow query threshold

	"github.com/rs/zerolog"          // Structured logging
	gormlogger "gorm.io/gorm/logger" // GORM logger interface
)

// zerologWriter adapts a zerolog.Logger to gorm's logger.Writer.
type zerologWriter struct {
	log zerolog.Logger
}

func (w zerologWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}

// newGormLogger logs slow queries and errors through zerolog. Missing rows are not errors here.
func newGormLogger(log zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(zerologWriter{log: log}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
