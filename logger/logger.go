// logger.go - Builds the zerolog loggers shared by the service and the seed command

package logger // Declares the package name

import ( // Import required packages
	"io" // Output destination
	"os" // Default stderr output

	"github.com/rs/zerolog" // Structured logging
)

// New returns a console logger with timestamps writing to w (stderr when nil).
// An unknown level name falls back to info.
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(level) // "" parses to NoLevel
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
