package util

import (
	"encoding/json"
	"log"
	"strings"
	"sync/atomic"
)

// Log levels, lowest first
const (
	LevelDebug int32 = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

func init() {
	currentLevel.Store(LevelInfo)
}

// SetLevel sets the process-wide minimum level from its name.
// Unknown names fall back to info.
func SetLevel(name string) {
	currentLevel.Store(ParseLevel(name))
}

// ParseLevel maps a level name to its value
func ParseLevel(name string) int32 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func enabled(level int32) bool {
	return level >= currentLevel.Load()
}

// Logger provides consistent logging across services
type Logger struct {
	prefix string
}

// NewLogger creates a new logger with a prefix
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// Start logs the start of a process
func (l *Logger) Start(name string) {
	if enabled(LevelDebug) {
		log.Printf(LogStart, l.prefix+": "+name)
	}
}

// End logs the end of a process
func (l *Logger) End(name string) {
	if enabled(LevelDebug) {
		log.Printf(LogEnd, l.prefix+": "+name)
	}
}

// Section logs a section header
func (l *Logger) Section(name string) {
	if enabled(LevelDebug) {
		log.Printf(LogSection, l.prefix+": "+name)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if enabled(LevelDebug) {
		log.Printf("[%s] "+format, append([]interface{}{l.prefix}, args...)...)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	if enabled(LevelInfo) {
		log.Printf("[%s] "+format, append([]interface{}{l.prefix}, args...)...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, err error) {
	if enabled(LevelWarn) {
		log.Printf("[%s] "+LogWarning, l.prefix, msg, err)
	}
}

// Error logs an error message
func (l *Logger) Error(msg string, err error) {
	if enabled(LevelError) {
		log.Printf("[%s] "+LogError, l.prefix, msg, err)
	}
}

// Success logs a success message
func (l *Logger) Success(msg string) {
	if enabled(LevelInfo) {
		log.Printf("[%s] ✓ %s", l.prefix, msg)
	}
}

// KeyValue logs key-value pairs on one line
func (l *Logger) KeyValue(pairs ...interface{}) {
	if !enabled(LevelDebug) {
		return
	}
	var b strings.Builder
	for i := 0; i < len(pairs)-1; i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(toString(pairs[i]))
		b.WriteString("=")
		b.WriteString(toString(pairs[i+1]))
	}
	log.Printf("[%s] %s", l.prefix, b.String())
}

// JSON logs data as formatted JSON
func (l *Logger) JSON(label string, data interface{}) {
	if !enabled(LevelDebug) {
		return
	}
	jsonBytes, _ := json.MarshalIndent(data, "", "  ")
	log.Printf("[%s] %s:\n%s", l.prefix, label, string(jsonBytes))
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(b)
}
