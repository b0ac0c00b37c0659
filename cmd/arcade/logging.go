package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Games own the terminal while they run,
// so records go to ~/.arcade/arcade.log; stderr is used only when the file
// cannot be opened. The returned func closes the file.
func newLogger() (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}

	var w io.Writer = f
	if flagVerbose {
		w = io.MultiWriter(f, os.Stderr)
	}
	logger := log.NewWithOptions(w, opts)
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }
}
