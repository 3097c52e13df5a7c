// Package logger holds the one slog.Logger the tools report through.
// Progress goes out at Info, skipped records at Warn.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Debug bool
	Quiet bool      // only warnings and errors
	Path  string    // append to this file instead of W
	W     io.Writer // defaults to os.Stderr
}

var (
	mu      sync.RWMutex
	global  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

// Setup installs a text handler. The returned function closes the log
// file, if there is one, and puts back a logger that discards.
func Setup(cfg Config) (func() error, error) {
	w := cfg.W
	if w == nil {
		w = os.Stderr
	}
	var f *os.File
	if cfg.Path != "" {
		var err error
		if f, err = os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
			return func() error { return nil }, err
		}
		w = f
	}

	level := slog.LevelInfo
	switch {
	case cfg.Debug:
		level = slog.LevelDebug
	case cfg.Quiet:
		level = slog.LevelWarn
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}))

	mu.Lock()
	global = l
	logFile = f
	mu.Unlock()

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		global = slog.New(slog.NewTextHandler(io.Discard, nil))
		return cerr
	}
	return cleanup, nil
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
