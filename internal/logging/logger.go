package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/rolodex/internal/colors"
)

// Logger is the structured logging interface used across rolodex.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that adds the key-value pairs to every entry.
	With(args ...any) Logger
}

// redacted replaces the value of any key naming a contact detail.
const redacted = "[REDACTED]"

// sensitiveKeys are matched against each word of a key, so "person_email"
// and "emailAddress" are both redacted.
var sensitiveKeys = map[string]bool{
	"phone":    true,
	"email":    true,
	"address":  true,
	"telegram": true,
	"github":   true,
	"password": true,
	"token":    true,
	"secret":   true,
}

type logger struct {
	l *clog.Logger
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level clog.Level) Logger {
	l := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
	})
	l.SetFormatter(clog.JSONFormatter)
	return logger{l: l}
}

func (g logger) Debug(msg string, args ...any) { g.l.Log(clog.DebugLevel, msg, redact(args)...) }
func (g logger) Info(msg string, args ...any)  { g.l.Log(clog.InfoLevel, msg, redact(args)...) }
func (g logger) Warn(msg string, args ...any)  { g.l.Log(clog.WarnLevel, msg, redact(args)...) }
func (g logger) Error(msg string, args ...any) { g.l.Log(clog.ErrorLevel, msg, redact(args)...) }

func (g logger) With(args ...any) Logger {
	return logger{l: g.l.With(redact(args)...)}
}

type discard struct{}

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}
func (d discard) With(...any) Logger { return d }

// redact copies pairs, hiding the values of sensitive keys.
func redact(pairs []any) []any {
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && isSensitive(key) {
			out[i+1] = redacted
		}
	}
	return out
}

func isSensitive(key string) bool {
	if sensitiveKeys[strings.ToLower(key)] {
		return true
	}
	for _, word := range keyWords(key) {
		if sensitiveKeys[word] {
			return true
		}
	}
	return false
}

// keyWords splits snake_case, kebab-case and camelCase keys into lower-case words.
func keyWords(key string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for _, r := range key {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// filePrefix starts the name of every log file rolodex writes.
const filePrefix = "rolodex_"

// openFile creates this run's log file, pruning old ones first.
func openFile(cfg Config, now time.Time) (*os.File, error) {
	dir, err := logDir(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("log directory: %w", err)
	}
	if err := rotate(dir, cfg.MaxFiles-1); err != nil {
		colors.Debug(fmt.Sprintf("log rotation: %v", err))
	}
	name := fmt.Sprintf("%s%s_%d.log", filePrefix, now.Format("20060102_150405"), os.Getpid())
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

var global = struct {
	mu     sync.RWMutex
	logger Logger
	file   *os.File
}{logger: discard{}}

// InitGlobal starts file logging from the loaded configuration and mirrors
// console messages into it. A previous global logger is shut down first.
func InitGlobal() error {
	if err := ShutdownGlobal(); err != nil {
		colors.Debug(fmt.Sprintf("closing previous log file: %v", err))
	}
	cfg := FromGlobalConfig()
	if !cfg.Enabled {
		return nil
	}
	f, err := openFile(cfg, time.Now())
	if err != nil {
		return err
	}
	l := New(f, cfg.Level)

	global.mu.Lock()
	global.logger, global.file = l, f
	global.mu.Unlock()

	colors.SetLogger(l)
	colors.Debug("logging to " + f.Name())
	return nil
}

// ShutdownGlobal closes the log file and discards further entries.
func ShutdownGlobal() error {
	global.mu.Lock()
	f := global.file
	global.logger, global.file = discard{}, nil
	global.mu.Unlock()

	if f == nil {
		return nil
	}
	colors.SetLogger(nil)
	return f.Close()
}

func current() Logger {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logger
}

// Debug logs through the global logger.
func Debug(msg string, args ...any) { current().Debug(msg, args...) }

// Info logs through the global logger.
func Info(msg string, args ...any) { current().Info(msg, args...) }

// Warn logs through the global logger.
func Warn(msg string, args ...any) { current().Warn(msg, args...) }

// Error logs through the global logger.
func Error(msg string, args ...any) { current().Error(msg, args...) }

// With derives a logger from the global one. The result keeps writing to the
// file that was open when With was called.
func With(args ...any) Logger { return current().With(args...) }
