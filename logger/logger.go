package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level defines log severity, ordered from most to least severe.
type Level int32

const (
	// ErrorLevel marks failures that need attention.
	ErrorLevel Level = iota
	// WarnLevel marks suspicious but non-fatal conditions.
	WarnLevel
	// InfoLevel marks normal operational messages.
	InfoLevel
	// DebugLevel marks verbose diagnostic messages.
	DebugLevel
)

// DefaultLevel is the threshold used when neither LOG nor DEBUG is set.
const DefaultLevel = WarnLevel

// ParseLevel maps the level names accepted in the LOG environment variable.
// The match is exact and case-sensitive; anything else reports false.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "error":
		return ErrorLevel, true
	case "warning":
		return WarnLevel, true
	case "info":
		return InfoLevel, true
	case "debug":
		return DebugLevel, true
	}
	return DefaultLevel, false
}

// String returns the name accepted by ParseLevel.
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warning"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	}
	return "unknown"
}

// tag returns the three-letter marker shown in every line.
func (l Level) tag() string {
	switch l {
	case DebugLevel:
		return "DBG"
	case InfoLevel:
		return "INF"
	case WarnLevel:
		return "WRN"
	case ErrorLevel:
		return "ERR"
	}
	return "UNK"
}

// Config defines options for Init. Init is optional; when it is skipped the
// first log call resolves the threshold from the environment.
type Config struct {
	// Level overrides the threshold normally resolved from LOG/DEBUG.
	// Accepts the same names as LOG; empty keeps environment resolution.
	// Default: "" (resolve from environment)
	Level string
	// ForceColor applies ANSI styling even when stderr is not a terminal.
	// Default: false
	ForceColor bool
}

// global state
var (
	// epoch anchors the elapsed-milliseconds column. time.Now carries a
	// monotonic reading, so wall clock adjustments cannot move it.
	epoch = time.Now()

	// levelOnce guards the one-time environment resolution; the resolved
	// threshold lives in currentLevel and only SetThreshold may change it
	// afterwards.
	levelOnce    sync.Once
	currentLevel atomic.Int32

	forceColor atomic.Bool

	// Mutex for thread-safe logging across concurrent goroutines.
	logMutex sync.Mutex

	// Dependency injection point for testing output.
	outStderr io.Writer = os.Stderr
)

// Init applies programmatic configuration. A recognized Config.Level skips
// the LOG/DEBUG environment lookup entirely.
func Init(config Config) {
	if l, ok := ParseLevel(config.Level); ok {
		SetThreshold(l)
	}
	forceColor.Store(config.ForceColor)
}

// Threshold returns the minimum severity required for a line to be emitted.
// The first call resolves it from the environment: a recognized LOG value
// wins, otherwise a non-empty DEBUG forces debug, otherwise DefaultLevel.
func Threshold() Level {
	levelOnce.Do(func() {
		currentLevel.Store(int32(levelFromEnv()))
	})
	return Level(currentLevel.Load())
}

// SetThreshold overrides the threshold for the rest of the process and
// disables the environment lookup if it has not happened yet.
func SetThreshold(l Level) {
	levelOnce.Do(func() {})
	currentLevel.Store(int32(l))
}

func levelFromEnv() Level {
	if l, ok := ParseLevel(os.Getenv("LOG")); ok {
		return l
	}
	if os.Getenv("DEBUG") != "" {
		return DebugLevel
	}
	return DefaultLevel
}

// A Logger tags every line it emits with a fixed module name. Declare one
// per source unit:
//
//	var log = logger.NewModule("net")
type Logger struct {
	module string
}

// NewModule returns a logger whose lines carry the given module tag.
func NewModule(name string) *Logger {
	return &Logger{module: name}
}

// Errorf logs an error message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(ErrorLevel, format, args...)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(WarnLevel, format, args...)
}

// Infof logs an informational message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Infof(format string, args ...any) {
	l.log(InfoLevel, format, args...)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(DebugLevel, format, args...)
}

// ErrorKV logs an error message with structured key-value pairs.
func (l *Logger) ErrorKV(msg string, keyvals ...any) {
	if ErrorLevel > Threshold() {
		return
	}
	l.log(ErrorLevel, "%s", msg+encodeFields(keyvals...))
}

// WarnKV logs a warning message with structured key-value pairs.
func (l *Logger) WarnKV(msg string, keyvals ...any) {
	if WarnLevel > Threshold() {
		return
	}
	l.log(WarnLevel, "%s", msg+encodeFields(keyvals...))
}

// InfoKV logs an info message with structured key-value pairs.
func (l *Logger) InfoKV(msg string, keyvals ...any) {
	if InfoLevel > Threshold() {
		return
	}
	l.log(InfoLevel, "%s", msg+encodeFields(keyvals...))
}

// DebugKV logs a debug message with structured key-value pairs.
func (l *Logger) DebugKV(msg string, keyvals ...any) {
	if DebugLevel > Threshold() {
		return
	}
	l.log(DebugLevel, "%s", msg+encodeFields(keyvals...))
}

// log gates, formats and emits one line. The gate runs before any
// formatting so suppressed levels cost nothing beyond the comparison.
func (l *Logger) log(level Level, format string, args ...any) {
	if level > Threshold() {
		return
	}

	file, line := callSite(3)
	msg := fmt.Sprintf(format, args...)
	primary, darker := stylesFor(level, colorEnabled(outStderr))

	// The whole line goes into one buffer and out in a single Write under
	// the mutex, so concurrent callers cannot interleave mid-line.
	var b strings.Builder
	b.WriteString(primary.Styled(fmt.Sprintf("%-4d: %s  %s  ", elapsedMillis(), level.tag(), l.module)))
	b.WriteString(primary.Styled(msg))
	b.WriteString(darker.Styled(fmt.Sprintf(" (%s:%d) ", stripPath(file), line)))
	b.WriteByte('\n')

	logMutex.Lock()
	defer logMutex.Unlock()
	io.WriteString(outStderr, b.String())
}

// EmptyLine writes a bare newline to stderr. It bypasses level gating and
// styling and always executes.
func EmptyLine() {
	logMutex.Lock()
	defer logMutex.Unlock()
	io.WriteString(outStderr, "\n")
}

// callSite reports the file and line of the logging call site.
func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return file, line
}

func elapsedMillis() int64 {
	return time.Since(epoch).Milliseconds()
}

// encodeFields formats key-value pairs as " key=value" strings.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, keyvals[i+1]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
