// Package logging writes structured JSON logs for rolodex sessions.
//
// File logging is off by default. When enabled each run appends to its own
// file under <state_dir>/logs, and contact details are redacted before they
// reach the file.
package logging

import (
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/rolodex/internal/config"
)

// Config controls file logging.
type Config struct {
	Enabled  bool
	Level    clog.Level
	MaxFiles int
	// StateDir holds the logs directory. Empty selects the temp fallback.
	StateDir string
}

// FromGlobalConfig reads the logging_* keys. debug forces the debug level and
// quiet the error level; debug wins when both are set.
func FromGlobalConfig() Config {
	return Config{
		Enabled:  config.GetBool("logging_enabled", false),
		Level:    levelFor(config.Get("logging_level", "info"), config.GetBool("debug", false), config.GetBool("quiet", false)),
		MaxFiles: config.GetInt("logging_max_files", 10),
		StateDir: config.Get("state_dir", ""),
	}
}

func levelFor(configured string, debug, quiet bool) clog.Level {
	switch {
	case debug:
		return clog.DebugLevel
	case quiet:
		return clog.ErrorLevel
	}
	level, err := clog.ParseLevel(configured)
	if err != nil {
		return clog.InfoLevel
	}
	return level
}

// logDir returns <stateDir>/logs when it can be written, else a directory
// under the system temp dir.
func logDir(stateDir string) (string, error) {
	if stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "rolodex", "logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writable(dir string) bool {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".write-check")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
