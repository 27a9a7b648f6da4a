package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"
)

// SetupLogging installs a JSON slog handler writing to the configured log
// file, or to stderr without one. The file is closed at exit.
func SetupLogging(cfg Config) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return &StartupError{Err: err}
	}

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.Create(cfg.LogFile)
		if err != nil {
			return &StartupError{Path: cfg.LogFile, Err: err}
		}
		atexit.Register(func() { f.Close() })
		w = f
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
