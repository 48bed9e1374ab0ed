package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"kite/internal/config"
	"kite/internal/orbit"
	"kite/internal/ui"
)

// Options configure the kite application.
type Options struct {
	ConfigPath string
	Endpoint   string // overrides the configured endpoint when set
}

// Run boots the kite TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}

	client, err := orbit.NewClient(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	logger, closeLog, err := openEventLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer closeLog()

	err = ui.Run(ui.Options{
		Context: ctx,
		Client:  client,
		Logger:  logger,
	})
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil) {
		// Interrupted by signal; a clean exit, not a failure.
		return nil
	}
	return err
}

// openEventLog opens the event trace sink, creating its directory if needed.
func openEventLog(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(file, "", log.LstdFlags), func() { _ = file.Close() }, nil
}
