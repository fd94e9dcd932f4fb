// Package logging formats leveled log lines onto a hal.Logger.
package logging

import (
	"fmt"
	"strings"

	"blockfield/hal"

	"github.com/fatih/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts the lower- or upper-case level names.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

var levelColors = [...]*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgRed, color.Bold),
}

// Logger writes "[LEVEL] component: message" lines. Loggers derived with
// With share the sink and threshold of their parent.
type Logger struct {
	out       hal.Logger
	min       Level
	component string
	colored   bool
}

func New(out hal.Logger, min Level, colored bool) *Logger {
	return &Logger{out: out, min: min, colored: colored}
}

// With returns a logger tagged with component.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	c := *l
	c.component = component
	return &c
}

func (l *Logger) Enabled(lv Level) bool { return l != nil && l.out != nil && lv >= l.min }

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(lv Level, format string, args ...any) {
	if !l.Enabled(lv) {
		return
	}
	tag := "[" + lv.String() + "]"
	if l.colored {
		c := *levelColors[lv]
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte(' ')
	if l.component != "" {
		b.WriteString(l.component)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, format, args...)
	l.out.WriteLineString(b.String())
}
