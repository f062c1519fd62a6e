package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tmajor/songbook/internal/shared"
	"github.com/tmajor/songbook/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing the library.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	logPath, err := r.config.LogFilePath()
	if err != nil {
		return fmt.Errorf("failed to resolve log path: %w", err)
	}

	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)
	r.disco.SetLogger(fileLogger)
	r.playlists.SetLogger(fileLogger)
	r.favorites.SetLogger(fileLogger)
	r.artists.SetLogger(fileLogger)
	r.stats.SetLogger(fileLogger)

	model := ui.NewModel(r.disco, r.playlists, r.favorites, r.stats)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
