package logging

import (
	"bytes"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultLogFile is the debug log file name, created in the working directory.
const DefaultLogFile = "flowreg.log"

// AppLogger wraps a charmbracelet logger. It is created by the process entry
// point and passed to every component that logs.
type AppLogger struct {
	logger *log.Logger
	debug  bool
	closer io.Closer
}

// Options controls how NewWithOptions builds a logger.
type Options struct {
	// Debug switches to debug level with caller reporting, written to LogFile.
	Debug bool
	// LogFile is the debug log destination. Empty means DefaultLogFile in the
	// current working directory.
	LogFile string
	// Output is the production destination. Nil means os.Stderr; stdout
	// belongs to the MCP stdio transport.
	Output io.Writer
}

// NewWithOptions builds a logger. Callers own the returned logger and must
// Close it to release the debug log file.
func NewWithOptions(opts Options) (*AppLogger, error) {
	if opts.Debug {
		logPath := opts.LogFile
		if logPath == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current working directory: %w", err)
			}
			logPath = filepath.Join(cwd, DefaultLogFile)
		}

		// Clear the log file on each run for development
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to create debug log file: %w", err)
		}

		logger := log.NewWithOptions(logFile, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "Flowreg",
		})
		logger.SetLevel(log.DebugLevel)
		logger.Info("Debug logging enabled", "log_file", logPath)

		return &AppLogger{
			logger: logger,
			debug:  true,
			closer: logFile,
		}, nil
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	// Production: warnings and errors only
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "Flowreg",
	})
	logger.SetLevel(log.WarnLevel)

	return &AppLogger{logger: logger}, nil
}

// Close releases the debug log file, if any. Safe to call more than once.
func (al *AppLogger) Close() error {
	if al.closer == nil {
		return nil
	}
	err := al.closer.Close()
	al.closer = nil
	return err
}

// IsDebug reports whether debug logging is active.
func (al *AppLogger) IsDebug() bool {
	return al.debug
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	if al.debug {
		al.logger.Debug(msg, keyvals...)
	}
}

// With returns a child logger that adds keyvals to every entry.
func (al *AppLogger) With(keyvals ...interface{}) *AppLogger {
	return &AppLogger{
		logger: al.logger.With(keyvals...),
		debug:  al.debug,
	}
}

// StandardLog adapts the logger for libraries that want a *log.Logger.
// Everything written through it is logged at error level.
func (al *AppLogger) StandardLog() *stdlog.Logger {
	return al.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})
}

// Pretty print any object
func (al *AppLogger) DebugObject(name string, obj interface{}) {
	if al.debug {
		al.logger.Debug("Object dump", "name", name, "object", fmt.Sprintf("%+v", obj))
	}
}

// Log performance metrics
func (al *AppLogger) LogPerformance(operation string, start time.Time) {
	if al.debug {
		duration := time.Since(start)
		al.logger.Debug("Performance",
			"operation", operation,
			"duration", duration,
		)
	}
}

// Testing Helper - NewTestLogger creates a logger that writes to a buffer for testing
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false, // Easier to test without timestamps
		ReportCaller:    false,
		Prefix:          "Test",
	})
	logger.SetLevel(log.DebugLevel)

	return &AppLogger{
		logger: logger,
		debug:  true,
	}, &buf
}
