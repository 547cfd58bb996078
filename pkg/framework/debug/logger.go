// Package debug provides leveled logging, block analysis and profiling for
// processors and the tools that drive them.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel is the severity of a message. Loggers write messages at or above
// their level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	// LogLevelOff silences a logger.
	LogLevelOff
)

var levelNames = [...]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
	LogLevelOff:   "OFF",
}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLogLevel accepts the names produced by String in any case, plus
// "warning", "none" and the empty string for Info.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LogLevelInfo, nil
	case "WARNING":
		return LogLevelWarn, nil
	case "NONE":
		return LogLevelOff, nil
	}
	for l, n := range levelNames {
		if n == name {
			return LogLevel(l), nil
		}
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Flags select the fields written before each message.
const (
	FlagTime      = 1 << iota // timestamp with milliseconds
	FlagShortFile             // caller file base name and line
	FlagLongFile              // caller full path and line
	FlagLevel                 // [LEVEL]
	FlagPrefix                // [prefix]
)

const DefaultFlags = FlagTime | FlagShortFile | FlagLevel | FlagPrefix

// Frames between logf and the code that asked for the message.
const callerDepth = 2

// Logger is a leveled logger safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	level  LogLevel
	prefix string
	flags  int
	now    func() time.Time
}

// New creates a logger at LogLevelInfo.
func New(out io.Writer, prefix string, flags int) *Logger {
	return &Logger{
		out:    out,
		prefix: prefix,
		flags:  flags,
		level:  LogLevelInfo,
		now:    time.Now,
	}
}

// NewFileLogger creates a logger appending to filename. Close releases the
// file.
func NewFileLogger(filename, prefix string, flags int) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(file, prefix, flags)
	l.closer = file
	return l, nil
}

// Close closes the file opened by NewFileLogger. It is a no-op for loggers
// created with New.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	l.out = io.Discard
	return err
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

// Enabled reports whether a message at level would be written. Callers use
// it to skip building expensive arguments.
func (l *Logger) Enabled(level LogLevel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writes(level)
}

func (l *Logger) writes(level LogLevel) bool {
	return level >= l.level && level < LogLevelOff
}

func (l *Logger) logf(depth int, level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.writes(level) {
		return
	}

	var sb strings.Builder
	if l.flags&FlagTime != 0 {
		sb.WriteString(l.now().Format("2006-01-02 15:04:05.000 "))
	}
	if l.flags&FlagLevel != 0 {
		fmt.Fprintf(&sb, "[%s] ", level)
	}
	if l.flags&FlagPrefix != 0 && l.prefix != "" {
		fmt.Fprintf(&sb, "[%s] ", l.prefix)
	}
	if l.flags&(FlagShortFile|FlagLongFile) != 0 {
		if _, file, line, ok := runtime.Caller(depth); ok {
			if l.flags&FlagShortFile != 0 {
				file = filepath.Base(file)
			}
			fmt.Fprintf(&sb, "%s:%d: ", file, line)
		}
	}

	fmt.Fprintf(&sb, format, args...)
	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteByte('\n')
	}

	_, _ = io.WriteString(l.out, sb.String())
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(callerDepth, LogLevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(callerDepth, LogLevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(callerDepth, LogLevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(callerDepth, LogLevelError, format, args...)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(os.Stderr, "", DefaultFlags))
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package-level logger and returns the previous one.
func SetDefault(l *Logger) *Logger {
	return defaultLogger.Swap(l)
}

func SetOutput(w io.Writer) { Default().SetOutput(w) }
func SetLevel(level LogLevel) { Default().SetLevel(level) }
func SetPrefix(prefix string) { Default().SetPrefix(prefix) }

func Debug(format string, args ...interface{}) {
	Default().logf(callerDepth, LogLevelDebug, format, args...)
}

func Info(format string, args ...interface{}) {
	Default().logf(callerDepth, LogLevelInfo, format, args...)
}

func Warn(format string, args ...interface{}) {
	Default().logf(callerDepth, LogLevelWarn, format, args...)
}

func Error(format string, args ...interface{}) {
	Default().logf(callerDepth, LogLevelError, format, args...)
}

// WarnIf logs at Warn when condition holds.
func WarnIf(condition bool, format string, args ...interface{}) {
	if condition {
		Default().logf(callerDepth, LogLevelWarn, format, args...)
	}
}
