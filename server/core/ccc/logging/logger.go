package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	// With returns a Logger that adds the given attributes to every record
	With(args ...any) Logger
}

type LogLevel string

const (
	// LogLevelDebug is used for debug messages
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is used for informational messages
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is used for warning messages
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is used for error messages
	LogLevelError LogLevel = "error"
)

// Level maps the configured level to a slog level, defaulting to info
func (l LogLevel) Level() slog.Level {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DailyRotatingWriter writes to <logDir>/<filename>-YYYY-MM-DD.log and
// switches files when the local date changes
type DailyRotatingWriter struct {
	logDir      string
	filename    string
	currentFile *os.File
	currentDate string
	now         func() time.Time
	mu          sync.Mutex
}

// NewDailyRotatingWriter creates a writer; the directory is created on first write
func NewDailyRotatingWriter(logDir, filename string) *DailyRotatingWriter {
	return &DailyRotatingWriter{
		logDir:   logDir,
		filename: filename,
		now:      time.Now,
	}
}

// Write implements the io.Writer interface
func (w *DailyRotatingWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// local time decides the file
	currentDate := w.now().Format("2006-01-02")

	if w.currentFile == nil || w.currentDate != currentDate {
		if err := w.rotate(currentDate); err != nil {
			return 0, err
		}
	}

	return w.currentFile.Write(p)
}

func (w *DailyRotatingWriter) rotate(date string) error {
	if w.currentFile != nil {
		w.currentFile.Close()
		w.currentFile = nil
	}

	if err := os.MkdirAll(w.logDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.logDir, fmt.Sprintf("%s-%s.log", w.filename, date))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	w.currentFile = file
	w.currentDate = date
	return nil
}

// Close closes the current file
func (w *DailyRotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile != nil {
		err := w.currentFile.Close()
		w.currentFile = nil
		return err
	}
	return nil
}

// slogLogger adapts *slog.Logger to the Logger interface
type slogLogger struct {
	*slog.Logger
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{Logger: l.Logger.With(args...)}
}

// NewLogger creates a JSON logger writing to w
func NewLogger(w io.Writer, logLevel LogLevel) Logger {
	return &slogLogger{
		Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: logLevel.Level(),
		})),
	}
}

// CreateLogger creates a logger that writes to daily rotating log files.
// An empty logDir or one that cannot be created falls back to stdout.
func CreateLogger(logLevel LogLevel, logDir string, fileName string) Logger {
	if logDir == "" {
		return NewLogger(os.Stdout, logLevel)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return NewLogger(os.Stdout, logLevel)
	}

	return NewLogger(NewDailyRotatingWriter(logDir, fileName), logLevel)
}

// nopLogger is a no-operation logger that implements the Logger interface.
type nopLogger struct{}

// NopLogger is a singleton Logger that performs no operations.
var NopLogger Logger = &nopLogger{}

func (l *nopLogger) Info(msg string, args ...any)  {}
func (l *nopLogger) Warn(msg string, args ...any)  {}
func (l *nopLogger) Error(msg string, args ...any) {}
func (l *nopLogger) Debug(msg string, args ...any) {}
func (l *nopLogger) With(args ...any) Logger       { return l }
