// Package logging provides a file-backed logger for debug output.
//
// The terminal is owned by tcell while the game runs, so anything written
// to stdout or stderr would corrupt the screen. All diagnostic output goes
// through a logr.Logger writing to a file instead.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Setup opens the log file and returns a logger writing to it.
// The file path comes from BLACKZONE_LOG, falling back to
// blackzone/blackzone.log under the user cache directory.
// Verbosity is controlled by BLACKZONE_LOG_V (default 0).
//
// On any failure a discard logger is returned so callers can log
// unconditionally; the returned close function is always safe to call.
func Setup() (logr.Logger, func() error, error) {
	if v := os.Getenv("BLACKZONE_LOG_V"); v != "" {
		if level, err := strconv.Atoi(v); err == nil {
			stdr.SetVerbosity(level)
		}
	}

	path, err := logPath()
	if err != nil {
		return logr.Discard(), func() error { return nil }, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), func() error { return nil }, err
	}

	logger := newFileLogger(file)
	return logger, file.Close, nil
}

// logPath resolves the log file location, creating parent directories.
func logPath() (string, error) {
	if path := os.Getenv("BLACKZONE_LOG"); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", err
		}
		return path, nil
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, "blackzone")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "blackzone.log"), nil
}

func newFileLogger(w io.Writer) logr.Logger {
	return stdr.New(log.New(w, "", log.LstdFlags|log.Lmicroseconds))
}
