package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// newLogger builds the CLI logger. "dev" writes coloured, human readable
// lines (colour only on a terminal), "json" and "text" use the slog handlers.
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	hopts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "dev", "":
		noColor := true
		if f, ok := w.(*os.File); ok {
			noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
		}
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: "[15:04:05.000]",
			NoColor:    noColor,
		})), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	case "text", "txt":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
