package log

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = [...]string{"debug", "info", "warn", "error", "none"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelNone {
		return "unknown"
	}
	return levelNames[l]
}

// LevelNames lists the accepted --log-level values.
func LevelNames() []string {
	return levelNames[:]
}

func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes lines at or above its level, each tagged with the level
// and, for loggers made by With, the component name.
type Logger struct {
	out    *log.Logger
	level  Level
	prefix string
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		out:   log.New(out, "", log.Ltime|log.Lmicroseconds),
		level: level,
	}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

// With returns a logger sharing l's output and level that tags every line
// with component.
func (l *Logger) With(component string) *Logger {
	return &Logger{out: l.out, level: l.level, prefix: l.prefix + component + ": "}
}

func (l *Logger) printf(level Level, format string, v []interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf(strings.ToUpper(level.String())+" "+l.prefix+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v) }
func (l *Logger) Infof(format string, v ...interface{})  { l.printf(LevelInfo, format, v) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.printf(LevelWarn, format, v) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v) }
